package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewStatusTransitionsTotal returns a Prometheus counter vector for delivery status transitions
func NewStatusTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_status_transitions_total",
		Help: "Total number of delivery status transitions by order domain and target status",
	}, []string{"domain", "status"})
}

// NewSnapshotHitsTotal returns a Prometheus counter for delivery snapshot cache hits
func NewSnapshotHitsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_snapshot_hits_total",
		Help: "Total number of delivery snapshot cache hits",
	})
}

// NewSnapshotMissesTotal returns a Prometheus counter for delivery snapshot cache misses
func NewSnapshotMissesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_snapshot_misses_total",
		Help: "Total number of delivery snapshot cache misses",
	})
}

// NewOrderEventsTotal returns a Prometheus counter vector for consumed order events
func NewOrderEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_events_total",
		Help: "Total number of consumed order events by status",
	}, []string{"status"})
}

// NewStatusEventsPublishedTotal returns a Prometheus counter for published delivery status events
func NewStatusEventsPublishedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_status_events_published_total",
		Help: "Total number of published delivery status change events",
	})
}
