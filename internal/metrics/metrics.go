// Package metrics defines the Prometheus metrics exposed by the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	VerificationsStarted  prometheus.Counter
	VerificationOutcomes  *prometheus.CounterVec
	VerificationsInFlight prometheus.Gauge
	UploadsRejected       prometheus.Counter
}

// New creates and registers all metrics with the given registerer. Tests pass
// their own registry so repeated construction never double-registers.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		VerificationsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "hirelogic_verifications_started_total",
			Help: "Total number of document verifications started",
		}),
		VerificationOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hirelogic_verification_outcomes_total",
			Help: "Total verification outcomes by terminal status",
		}, []string{"outcome"}),
		VerificationsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hirelogic_verifications_in_flight",
			Help: "Number of document verifications currently in flight",
		}),
		UploadsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "hirelogic_uploads_rejected_total",
			Help: "Total number of uploads rejected by validation",
		}),
	}
}

// VerificationStarted records the start of a verification.
func (m *Metrics) VerificationStarted() {
	if m == nil {
		return
	}
	m.VerificationsStarted.Inc()
	m.VerificationsInFlight.Inc()
}

// VerificationFinished records a terminal outcome.
func (m *Metrics) VerificationFinished(outcome string) {
	if m == nil {
		return
	}
	m.VerificationsInFlight.Dec()
	m.VerificationOutcomes.WithLabelValues(outcome).Inc()
}

// UploadRejected records a validation rejection.
func (m *Metrics) UploadRejected() {
	if m == nil {
		return
	}
	m.UploadsRejected.Inc()
}
