package monitor

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	relayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_requests_total",
			Help: "Total relay requests by provider and response status code.",
		},
		[]string{"provider", "status_code"},
	)

	relayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_request_duration_seconds",
			Help:    "End-to-end relay request duration, including the upstream call.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
)

// RecordRelayRequest tracks one completed relay request. Requests rejected
// before provider selection are labeled "none".
func RecordRelayRequest(provider string, statusCode int, seconds float64) {
	if provider == "" {
		provider = "none"
	}
	relayRequestsTotal.WithLabelValues(provider, strconv.Itoa(statusCode)).Inc()
	relayRequestDuration.WithLabelValues(provider).Observe(seconds)
}
