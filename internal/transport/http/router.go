package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"suraksha/internal/platform/metrics"
	"suraksha/internal/platform/middleware"
)

// RouterConfig collects everything the router wires together. Handlers and
// the realtime endpoint are injected so tests can assemble partial routers.
type RouterConfig struct {
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Auth        *AuthHandler
	Tourists    *TouristHandler
	Alerts      *AlertHandler
	Admin       *AdminHandler
	Bridge      *BridgeHandler
	Realtime    http.HandlerFunc // websocket upgrade endpoint; optional
	MetricsPage http.Handler     // prometheus exposition; optional
	PingMessage string
}

// NewRouter wires all public endpoints. The realtime endpoint stays outside
// the instrumented /api group because latency wrapping would break the
// websocket hijack.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))

	if cfg.Realtime != nil {
		r.Get("/ws/alerts", cfg.Realtime)
	}
	if cfg.MetricsPage != nil {
		r.Handle("/metrics", cfg.MetricsPage)
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(cfg.Metrics.Latency)

		ping := cfg.PingMessage
		if ping == "" {
			ping = "ping"
		}
		api.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			WriteJSON(w, http.StatusOK, map[string]string{"message": ping})
		})

		cfg.Auth.Register(api)
		cfg.Tourists.Register(api)
		cfg.Alerts.Register(api)
		cfg.Admin.Register(api)
		cfg.Bridge.Register(api)
	})

	return r
}
