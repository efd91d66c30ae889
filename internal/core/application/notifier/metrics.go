package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSent         = "sent"
	outcomeFailed       = "failed"
	outcomeRenderFailed = "render_failed"
	outcomeThrottled    = "throttle_aborted"
	outcomeStored       = "stored"
)

// Metrics counts email and in-app delivery outcomes.
type Metrics struct {
	emails        *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewMetrics registers the notifier counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		emails: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "laundry_notifier_emails_total",
				Help: "Emails handled by the notifier by template and outcome",
			},
			[]string{"template", "outcome"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "laundry_notifier_notifications_total",
				Help: "In-app notifications handled by the notifier by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
	}
}

func (m *Metrics) email(template, outcome string) {
	if m == nil {
		return
	}
	m.emails.WithLabelValues(template, outcome).Inc()
}

func (m *Metrics) notification(kind, outcome string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, outcome).Inc()
}
