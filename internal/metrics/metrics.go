// Package metrics exposes the Prometheus instruments of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds every collector registered by the service.
type Metrics struct {
	OperationRequests *prometheus.CounterVec
	OperationLatency  *prometheus.HistogramVec
	LaneWait          *prometheus.HistogramVec
	LaneRejections    *prometheus.CounterVec
	VaultRecords      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg. Passing a
// fresh [prometheus.NewRegistry] keeps tests isolated from the global
// default registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OperationRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rsa_vault_operation_requests_total",
				Help: "Total number of RSA operations by result.",
			},
			[]string{"operation", "result"},
		),
		OperationLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rsa_vault_operation_latency_seconds",
				Help:    "Latency of RSA operations, including time spent waiting for a worker slot.",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
			},
			[]string{"operation"},
		),
		LaneWait: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rsa_vault_lane_wait_seconds",
				Help:    "Time spent waiting for a slot in a worker lane.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"lane"},
		),
		LaneRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rsa_vault_lane_rejections_total",
				Help: "Requests abandoned while waiting for a worker slot.",
			},
			[]string{"lane"},
		),
		VaultRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rsa_vault_saved_ciphertext_events_total",
				Help: "Saved-ciphertext lifecycle events.",
			},
			[]string{"event"},
		),
		gatherer: reg,
	}
}

// Nop returns metrics bound to a private registry that nothing scrapes.
func Nop() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// RecordOperation records one finished RSA operation.
func (m *Metrics) RecordOperation(operation, result string, duration time.Duration) {
	m.OperationRequests.WithLabelValues(operation, result).Inc()
	m.OperationLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordLaneWait records how long a caller queued for a worker slot.
func (m *Metrics) RecordLaneWait(lane string, wait time.Duration) {
	m.LaneWait.WithLabelValues(lane).Observe(wait.Seconds())
}

// RecordLaneRejection records a caller that gave up before getting a slot.
func (m *Metrics) RecordLaneRejection(lane string) {
	m.LaneRejections.WithLabelValues(lane).Inc()
}

// RecordVaultEvent records a vault lifecycle event such as "created".
func (m *Metrics) RecordVaultEvent(event string) {
	m.VaultRecords.WithLabelValues(event).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
