package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"suraksha/internal/tourist"
)

// AdminService is the verification workflow surface used by the admin
// dashboard.
type AdminService interface {
	ListPending(ctx context.Context) ([]*tourist.Tourist, error)
	Approve(ctx context.Context, id string) (*tourist.Tourist, error)
	Reject(ctx context.Context, id string) (*tourist.Tourist, error)
}

// AdminHandler serves the verification queue endpoints.
type AdminHandler struct {
	service AdminService
	logger  *slog.Logger
}

func NewAdminHandler(service AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{service: service, logger: logger}
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Get("/admin/pending-verifications", h.handlePending)
	r.Post("/admin/approve/{userId}", h.handleApprove)
	r.Post("/admin/reject/{userId}", h.handleReject)
}

func (h *AdminHandler) handlePending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.service.ListPending(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	if pending == nil {
		pending = []*tourist.Tourist{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": pending})
}

func (h *AdminHandler) handleApprove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userId")
	t, err := h.service.Approve(r.Context(), id)
	if err != nil {
		h.logger.Warn("approval failed", "tourist_id", id, "error", err.Error())
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"blockchainId": t.BlockchainID,
	})
}

func (h *AdminHandler) handleReject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userId")
	if _, err := h.service.Reject(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
