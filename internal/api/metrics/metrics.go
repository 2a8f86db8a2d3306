// Package metrics defines the custom Prometheus metrics for the
// real-estate back-office API. It is the single source of truth for metric
// names, labels, and help strings; counters register themselves with the
// default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realestate"

// LoginsTotal counts login attempts that reached the auth service.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginRateLimitedTotal counts login attempts rejected by the rate limiter
// before reaching the auth service.
var LoginRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_rate_limited_total",
		Help:      "Total number of login attempts rejected by the rate limiter.",
	},
)

// AppointmentsCreatedTotal counts public booking submissions.
// Label:
//   - service: the requested service category (e.g. "legal", "viewing")
var AppointmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments booked, by service category.",
	},
	[]string{"service"},
)

// AppointmentTransitionsTotal counts committed status transitions.
// Label:
//   - status: the new status applied ("pending", "approved", "rejected")
var AppointmentTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_transitions_total",
		Help:      "Total number of appointment status transitions, by new status.",
	},
	[]string{"status"},
)

// AppointmentNotificationsTotal counts approval-email outcomes.
// Label:
//   - result: "sent", "failed", or "skipped" (invalid address)
var AppointmentNotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_notifications_total",
		Help:      "Total number of approval email attempts, by outcome.",
	},
	[]string{"result"},
)
