// Package metrics defines and registers all custom Prometheus metrics for the
// course API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "course_api"

// Auth results.
const (
	AuthSuccess = "success"
	AuthMissing = "missing"
	AuthInvalid = "invalid"
	AuthError   = "error"
)

// ── Authentication ────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts basic-auth checks on private endpoints.
// Label:
//   - result: "success", "missing" (no/empty credentials), "invalid" (unknown
//     email or wrong password) or "error" (store failure)
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// ── Validation ────────────────────────────────────────────────────────────────

// ValidationFailuresTotal counts requests rejected by the field validator.
// Label:
//   - resource: "course" or "user"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by field validation.",
	},
	[]string{"resource"},
)

// ── Courses ───────────────────────────────────────────────────────────────────

// CourseMutationsTotal counts successful course writes.
// Label:
//   - operation: "create", "update", "delete" or "replay" (idempotent create hit)
var CourseMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_mutations_total",
		Help:      "Total number of successful course mutations, by operation.",
	},
	[]string{"operation"},
)

// ── Users ─────────────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful signups.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)
