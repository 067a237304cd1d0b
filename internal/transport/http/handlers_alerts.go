package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"suraksha/internal/alert"
	"suraksha/internal/platform/metrics"
)

// AlertService records panic events and exposes recent history.
type AlertService interface {
	RecordPanic(ctx context.Context, report alert.PanicReport) (*alert.Alert, error)
	Recent(ctx context.Context, limit int) ([]*alert.Alert, error)
}

// AlertHandler serves the alert log and the panic button endpoint.
type AlertHandler struct {
	service AlertService
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewAlertHandler(service AlertService, m *metrics.Metrics, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{service: service, metrics: m, logger: logger}
}

func (h *AlertHandler) Register(r chi.Router) {
	r.Get("/alerts", h.handleRecent)
	r.Post("/alerts/panic", h.handlePanic)
}

func (h *AlertHandler) handleRecent(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.Recent(r.Context(), alert.DefaultRecentLimit)
	if err != nil {
		WriteError(w, err)
		return
	}
	if alerts == nil {
		alerts = []*alert.Alert{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"data": alerts})
}

type panicRequest struct {
	UserID    string          `json:"userId"`
	Location  *alert.Location `json:"location"`
	Timestamp string          `json:"timestamp"`
	Notes     string          `json:"notes"`
}

// handlePanic always succeeds: defaults fill any missing field and the
// broadcast is fire-and-forget, so the response never waits on delivery.
func (h *AlertHandler) handlePanic(w http.ResponseWriter, r *http.Request) {
	var req panicRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	a, err := h.service.RecordPanic(r.Context(), alert.PanicReport{
		UserID:    req.UserID,
		Location:  req.Location,
		Timestamp: req.Timestamp,
		Notes:     req.Notes,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.PanicAlertsTotal.Inc()
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"alertId": a.AlertID,
	})
}
