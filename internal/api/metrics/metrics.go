// Package metrics defines and registers all custom Prometheus metrics for
// the volunteer signup gateway. It is the single source of truth for
// metric names, labels, and help strings.
//
// Collectors are created with promauto, so importing the package registers
// them with the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "signup"

// Outcome labels shared by the submission metrics.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeInFlight    = "in_flight"
	OutcomeFailed      = "failed"
)

// SubmissionsTotal counts signup submissions by outcome.
// Label:
//   - outcome: success, invalid, unavailable, in_flight, failed
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of signup submissions, by outcome.",
	},
	[]string{"outcome"},
)

// ValidationFailuresTotal counts field errors returned to the user.
// Label:
//   - field: name, email, password, confirmPassword
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of field validation failures, by field.",
	},
	[]string{"field"},
)

// SubmitDuration measures a submission from validation to the upstream
// reply.
// Label:
//   - outcome: same values as SubmissionsTotal
var SubmitDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "submit_duration_seconds",
		Help:      "Duration of signup submissions including the upstream call.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
