// Package metrics provides Prometheus metrics for client instrumentation.
//
// Key metrics:
//   - API request counts by endpoint and outcome
//   - API request latency by endpoint
//   - Orders accepted by the exchange
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalshi_api_requests_total",
			Help: "Total API requests by endpoint and outcome (HTTP status or transport_error).",
		},
		[]string{"endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kalshi_api_request_duration_seconds",
			Help:    "API request latency by endpoint.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kalshi_orders_created_total",
			Help: "Total orders accepted by the exchange.",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, OrdersCreated)
}
