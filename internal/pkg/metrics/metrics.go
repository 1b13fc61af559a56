// Package metrics defines and registers all custom Prometheus metrics for the
// greenhouse console. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "greenhouse"

// ── Backend call metrics ──────────────────────────────────────────────────────

// ServiceCallsTotal counts calls made by the domain services.
// Labels:
//   - service: resource family (e.g. "plant", "seed")
//   - op: service operation (e.g. "ListPlants")
//   - result: "ok" or "error"
var ServiceCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_calls_total",
		Help:      "Total number of backend calls issued by domain services.",
	},
	[]string{"service", "op", "result"},
)

// ServiceCallDuration measures backend round-trip time per operation.
var ServiceCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "service_call_duration_seconds",
		Help:      "Duration of backend calls issued by domain services.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "op"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session state changes.
// Label:
//   - to: "anonymous", "authenticating" or "authenticated"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session state transitions, by target state.",
	},
	[]string{"to"},
)

// SessionEvictionsTotal counts logouts forced by a 401 from the backend.
var SessionEvictionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_evictions_total",
		Help:      "Total number of sessions evicted after the backend rejected the token.",
	},
)

// ── Console HTTP metrics ──────────────────────────────────────────────────────

// HTTPRequestsTotal counts requests served by the console surface.
// Labels:
//   - method, path (route template), code (status code)
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of console HTTP requests.",
	},
	[]string{"method", "path", "code"},
)

// HTTPRequestDuration measures console request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of console HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// ObserveServiceCall records one backend call.
func ObserveServiceCall(service, op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ServiceCallsTotal.WithLabelValues(service, op, result).Inc()
	ServiceCallDuration.WithLabelValues(service, op).Observe(time.Since(start).Seconds())
}
