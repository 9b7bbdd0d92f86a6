// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mealmarket"

var (
	// APILatency measures HTTP request latencies by route template.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_latency_seconds",
			Help:      "API endpoint latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// OfferTransitions counts offer state changes by action and outcome (success|conflict|not_found|invalid|error).
	OfferTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_transitions_total",
			Help:      "Offer state transition attempts",
		},
		[]string{"action", "result"},
	)

	// RealtimeConnections tracks open websocket connections on this instance.
	RealtimeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_connections",
			Help:      "Open realtime connections",
		},
	)

	// RealtimeEvents counts events by origin (local|remote) and scope (room|broadcast).
	RealtimeEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_events_total",
			Help:      "Realtime events delivered to the hub",
		},
		[]string{"origin", "scope"},
	)

	// RealtimeSlowConsumers counts connections closed because their send buffer was full.
	RealtimeSlowConsumers = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "realtime_slow_consumers_total",
			Help:      "Connections dropped for backpressure",
		},
	)

	// BackplaneForwardFailures counts events that could not be forwarded to other instances.
	BackplaneForwardFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backplane_forward_failures_total",
			Help:      "Realtime events the backplane failed to forward",
		},
	)

	// HousekeepingRemoved counts rows removed by each housekeeping job.
	HousekeepingRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "housekeeping_removed_total",
			Help:      "Rows removed by housekeeping jobs",
		},
		[]string{"job"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
