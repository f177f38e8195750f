// Package metrics defines and registers all custom Prometheus metrics of the
// vibefolio API. Metrics are registered with the default registry on import
// through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vibefolio"

// ── Guard metrics ─────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts terminal decisions of the admin page guard.
// Label:
//   - outcome: "authorized", "denied" or "abandoned" (request cancelled first)
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of admin guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts sign-in attempts.
// Labels:
//   - method: "password" or "oidc"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sign-in attempts.",
	},
	[]string{"method", "result"},
)

// RegistrationsTotal counts accounts created through sign-up.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - scope: "login", "signup", "api" or "upload"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"scope"},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts newly published projects.
// Label:
//   - category: project category
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by category.",
	},
	[]string{"category"},
)

// ViewsProcessedTotal counts views taken off the queue.
// Label:
//   - result: "ok" or "error"
var ViewsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_processed_total",
		Help:      "Total number of project views processed.",
	},
	[]string{"result"},
)

// ViewsQueueDepth tracks the number of views waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ViewsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "views_queue_depth",
		Help:      "Current number of views pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ViewProcessingDuration measures how long one view takes from dequeue to
// persistence.
var ViewProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "view_processing_duration_seconds",
		Help:      "Duration of view processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
