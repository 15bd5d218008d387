package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics records request counts, latencies and response sizes per API area.
type HTTPMetrics struct {
	inFlight      *prometheus.GaugeVec
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	responseBytes *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	f := promauto.With(reg)
	return &HTTPMetrics{
		inFlight: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "barfer",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests per API area.",
		}, []string{"area"}),

		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by area, route and status class.",
		}, []string{"area", "method", "route", "class"}),

		// carrier fan-out bounds checkout latency, so buckets reach past the per-carrier timeout
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barfer",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 7.5, 10},
		}, []string{"area", "route"}),

		responseBytes: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barfer",
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "Size of HTTP response bodies.",
			Buckets:   prometheus.ExponentialBuckets(128, 4, 7),
		}, []string{"area"}),
	}
}

var defaultHTTPMetrics = NewHTTPMetrics(prometheus.DefaultRegisterer)

// Metrics instruments requests with the process-wide collectors.
func Metrics(next http.Handler) http.Handler {
	return defaultHTTPMetrics.Handler(next)
}

func (m *HTTPMetrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pathArea := Area(r.URL.Path)
		m.inFlight.WithLabelValues(pathArea).Inc()
		defer m.inFlight.WithLabelValues(pathArea).Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		area := Area(route)
		if route == "unknown" {
			area = pathArea
		}

		m.requests.WithLabelValues(area, r.Method, route, StatusClass(rw.status)).Inc()
		m.duration.WithLabelValues(area, route).Observe(time.Since(start).Seconds())
		m.responseBytes.WithLabelValues(area).Observe(float64(rw.bytes))
	})
}

// Area groups a route or path by the part of the API it belongs to.
func Area(path string) string {
	first, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	switch first {
	case "shipping":
		return "shipping"
	case "balance":
		return "balance"
	case "orders", "order":
		return "orders"
	case "salidas", "categorias-salidas", "metodos-pago", "proveedores", "categorias-proveedores":
		return "ledger"
	case "metrics", "swagger":
		return "ops"
	default:
		return "other"
	}
}

// StatusClass collapses a status code to "2xx", "4xx" and so on.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return string(rune('0'+status/100)) + "xx"
}
