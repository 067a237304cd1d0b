package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RegistrationsTotal  prometheus.Counter
	PanicAlertsTotal    prometheus.Counter
	BroadcastsDelivered prometheus.Counter
	BroadcastsDropped   prometheus.Counter
	UpstreamErrorsTotal *prometheus.CounterVec
	OpenSessions        prometheus.Gauge
	RequestDuration     *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics with reg. Passing a fresh
// registry keeps test instances isolated.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "suraksha_registrations_total",
			Help: "Total number of tourist registrations accepted.",
		}),
		PanicAlertsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "suraksha_panic_alerts_total",
			Help: "Total number of panic alerts recorded.",
		}),
		BroadcastsDelivered: factory.NewCounter(prometheus.CounterOpts{
			Name: "suraksha_broadcasts_delivered_total",
			Help: "Alert events delivered to realtime session send buffers.",
		}),
		BroadcastsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "suraksha_broadcasts_dropped_total",
			Help: "Alert events dropped because a session send buffer was full.",
		}),
		UpstreamErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "suraksha_upstream_errors_total",
			Help: "Failed calls to the mocked upstream services.",
		}, []string{"upstream"}),
		OpenSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "suraksha_realtime_sessions",
			Help: "Currently connected dashboard viewer sessions.",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "suraksha_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

// Latency is HTTP middleware recording request duration. A nil receiver is a
// no-op so tests can wire handlers without metrics.
func (m *Metrics) Latency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		m.RequestDuration.WithLabelValues(r.Method, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
