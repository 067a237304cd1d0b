package httptransport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"suraksha/internal/bridge"
	"suraksha/internal/platform/metrics"
)

// BridgeHandler proxies the two mocked upstream services. Bodies and query
// params are forwarded verbatim and the upstream's status/body is relayed;
// only a transport failure produces the gateway's own 502.
type BridgeHandler struct {
	service bridge.Service
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewBridgeHandler(service bridge.Service, m *metrics.Metrics, logger *slog.Logger) *BridgeHandler {
	return &BridgeHandler{service: service, metrics: m, logger: logger}
}

func (h *BridgeHandler) Register(r chi.Router) {
	r.Post("/bridge/blockchain/createID", h.handleCreateID)
	r.Get("/bridge/blockchain/verifyID", h.handleVerifyID)
	r.Post("/bridge/aiml/safetyScore", h.handleSafetyScore)
	r.Post("/bridge/aiml/detectAnomaly", h.handleDetectAnomaly)
}

func (h *BridgeHandler) handleCreateID(w http.ResponseWriter, r *http.Request) {
	h.relay(w, "blockchain", func(payload json.RawMessage) (*bridge.UpstreamResponse, error) {
		return h.service.CreateIdentity(r.Context(), payload)
	}, r.Body)
}

func (h *BridgeHandler) handleVerifyID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.VerifyIdentity(r.Context(), r.URL.Query().Get("blockchainId"))
	h.write(w, "blockchain", resp, err)
}

func (h *BridgeHandler) handleSafetyScore(w http.ResponseWriter, r *http.Request) {
	h.relay(w, "aiml", func(payload json.RawMessage) (*bridge.UpstreamResponse, error) {
		return h.service.SafetyScore(r.Context(), payload)
	}, r.Body)
}

func (h *BridgeHandler) handleDetectAnomaly(w http.ResponseWriter, r *http.Request) {
	h.relay(w, "aiml", func(payload json.RawMessage) (*bridge.UpstreamResponse, error) {
		return h.service.DetectAnomaly(r.Context(), payload)
	}, r.Body)
}

func (h *BridgeHandler) relay(w http.ResponseWriter, upstream string,
	call func(json.RawMessage) (*bridge.UpstreamResponse, error), body io.Reader) {
	payload, err := io.ReadAll(body)
	if err != nil || len(payload) == 0 {
		payload = []byte("{}")
	}
	resp, err := call(payload)
	h.write(w, upstream, resp, err)
}

func (h *BridgeHandler) write(w http.ResponseWriter, upstream string, resp *bridge.UpstreamResponse, err error) {
	if err != nil {
		if h.metrics != nil {
			h.metrics.UpstreamErrorsTotal.WithLabelValues(upstream).Inc()
		}
		WriteError(w, err)
		return
	}
	WriteRaw(w, resp.StatusCode, resp.Body)
}
