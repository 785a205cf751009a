// Package metrics bundles the Prometheus collectors exposed by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the domain-metric surface consumed by usecases. Nop satisfies
// it when metrics are disabled.
type Recorder interface {
	IncSlotViolation(kind string)
	IncVoucherRejection(reason string)
	IncLoyaltyEvaluation(tier string)
}

// Nop discards all domain metrics.
type Nop struct{}

func (Nop) IncSlotViolation(string)     {}
func (Nop) IncVoucherRejection(string)  {}
func (Nop) IncLoyaltyEvaluation(string) {}

// Metrics holds all registered collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SlotViolationsTotal *prometheus.CounterVec
	VoucherRejections   *prometheus.CounterVec
	LoyaltyUpgrades     *prometheus.CounterVec
}

// New registers the service collectors on the default registry.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, route and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		SlotViolationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_slot_violations_total",
			Help:        "Slot validation violations by rule kind.",
			ConstLabels: labels,
		}, []string{"kind"}),

		VoucherRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "voucher_rejections_total",
			Help:        "Voucher redemptions rejected by reason.",
			ConstLabels: labels,
		}, []string{"reason"}),

		LoyaltyUpgrades: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "loyalty_tier_evaluations_total",
			Help:        "Loyalty tier evaluations by resulting tier.",
			ConstLabels: labels,
		}, []string{"tier"}),
	}
}

func (m *Metrics) IncSlotViolation(kind string) {
	m.SlotViolationsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncVoucherRejection(reason string) {
	m.VoucherRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncLoyaltyEvaluation(tier string) {
	m.LoyaltyUpgrades.WithLabelValues(tier).Inc()
}
