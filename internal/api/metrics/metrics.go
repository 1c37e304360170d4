// Package metrics defines and registers all custom Prometheus metrics for
// the clinic API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinica"

// AppointmentsCreatedTotal counts newly booked appointments.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created.",
	},
)

// PatientsSyncedTotal counts patient records auto-provisioned from accounts.
var PatientsSyncedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patients_synced_total",
		Help:      "Total number of patient records created by identity sync.",
	},
)

// PatientSearchesTotal counts clinician patient lookups.
// Label:
//   - result: "hit" (at least one match) or "miss"
var PatientSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patient_searches_total",
		Help:      "Total number of patient searches, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// PhotoCleanupFailuresTotal counts old profile images that could not be
// removed after a replacement. The contract keeps these failures non-fatal,
// so this counter and a warning log are their only trace.
var PhotoCleanupFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "photo_cleanup_failures_total",
		Help:      "Total number of failed deletions of replaced profile photos.",
	},
)
