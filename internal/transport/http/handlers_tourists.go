package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"suraksha/internal/tourist"
)

// TouristReader is the read-only registry view the public listing needs.
type TouristReader interface {
	List(ctx context.Context) ([]*tourist.Tourist, error)
	Get(ctx context.Context, id string) (*tourist.Tourist, error)
}

// TouristHandler serves the public tourist listing endpoints.
type TouristHandler struct {
	service TouristReader
	logger  *slog.Logger
}

func NewTouristHandler(service TouristReader, logger *slog.Logger) *TouristHandler {
	return &TouristHandler{service: service, logger: logger}
}

func (h *TouristHandler) Register(r chi.Router) {
	r.Get("/tourists", h.handleList)
	r.Get("/tourists/{id}", h.handleGet)
}

func (h *TouristHandler) handleList(w http.ResponseWriter, r *http.Request) {
	tourists, err := h.service.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"data":  tourists,
		"total": len(tourists),
	})
}

func (h *TouristHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, t)
}
