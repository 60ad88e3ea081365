package metrics

import "github.com/prometheus/client_golang/prometheus"

// ContactMetrics exposes counters for the contact pipeline. All observe
// methods are nil-safe so callers need no metrics wiring in tests.
type ContactMetrics struct {
	submissionsTotal  *prometheus.CounterVec
	notificationTotal *prometheus.CounterVec
	storeTotal        *prometheus.CounterVec
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by validation outcome",
		}, []string{"outcome"}),
		notificationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "notification_attempts_total",
			Help:      "Email notification attempts by provider, outcome and failure kind",
		}, []string{"provider", "outcome", "kind"}),
		storeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "store_total",
			Help:      "Background submission persistence outcomes",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.notificationTotal, m.storeTotal)
	return m
}

func (m *ContactMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *ContactMetrics) ObserveNotification(provider, outcome, kind string) {
	if m == nil {
		return
	}
	m.notificationTotal.WithLabelValues(provider, outcome, kind).Inc()
}

func (m *ContactMetrics) ObserveStore(outcome string) {
	if m == nil {
		return
	}
	m.storeTotal.WithLabelValues(outcome).Inc()
}
