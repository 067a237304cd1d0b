package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"suraksha/internal/jwttoken"
	"suraksha/internal/platform/metrics"
	"suraksha/internal/tourist"
	dErrors "suraksha/pkg/domain-errors"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// AuthService is the slice of the tourist workflow the auth endpoints need.
type AuthService interface {
	Register(ctx context.Context, reg tourist.Registration) (*tourist.Tourist, error)
	ResolveLogin(ctx context.Context, email string) (*tourist.Tourist, error)
}

// AuthHandler serves registration and the mocked login.
type AuthHandler struct {
	service AuthService
	tokens  *jwttoken.Service
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewAuthHandler(service AuthService, tokens *jwttoken.Service, m *metrics.Metrics, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens, metrics: m, logger: logger}
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
}

type registerRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Password         string `json:"password"` // accepted, never checked (demo)
	Itinerary        string `json:"itinerary"`
	EmergencyName    string `json:"emergencyName"`
	EmergencyPhone   string `json:"emergencyPhone"`
	DocumentType     string `json:"documentType"`
	DocumentNumber   string `json:"documentNumber"`
	DocumentFileName string `json:"documentFileName"`
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	t, err := h.service.Register(r.Context(), tourist.Registration{
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Itinerary:             req.Itinerary,
		EmergencyContactName:  req.EmergencyName,
		EmergencyContactPhone: req.EmergencyPhone,
		DocumentType:          tourist.DocumentType(req.DocumentType),
		DocumentNumber:        req.DocumentNumber,
		DocumentFileName:      req.DocumentFileName,
	})
	if err != nil {
		h.logger.Warn("registration rejected", "error", err.Error())
		WriteError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RegistrationsTotal.Inc()
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"userId":  t.ID,
		"status":  "pending_verification",
	})
}

type loginRequest struct {
	Email string `json:"email"`
}

// handleLogin is mocked: no password check, email match falls back to the
// first registered tourist, then to a placeholder id.
func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	// A missing or malformed body still logs in (demo behavior).
	_ = json.NewDecoder(r.Body).Decode(&req)

	userID := "t000"
	t, err := h.service.ResolveLogin(r.Context(), req.Email)
	if err != nil {
		WriteError(w, err)
		return
	}
	if t != nil {
		userID = t.ID
	}

	token, err := h.tokens.GenerateAccessToken(userID, "tourist", accessTokenTTL)
	if err != nil {
		WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token"))
		return
	}
	refresh, err := h.tokens.GenerateRefreshToken(userID, refreshTokenTTL)
	if err != nil {
		WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign refresh token"))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"token":        token,
		"refreshToken": refresh,
		"role":         "tourist",
		"userId":       userID,
	})
}
