// Package metrics defines the custom Prometheus metrics for the lost-and-found
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lostfound"

// ItemsReportedTotal counts created postings.
// Labels:
//   - type: "lost" or "found"
//   - category: one of the six item categories
var ItemsReportedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_reported_total",
		Help:      "Total number of items reported, by type and category.",
	},
	[]string{"type", "category"},
)

// ItemsResolvedTotal counts postings transitioned to resolved.
// Label:
//   - type: "lost" or "found"
var ItemsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_resolved_total",
		Help:      "Total number of items marked resolved, by type.",
	},
	[]string{"type"},
)

// AuthFailuresTotal counts rejected protected requests.
// Label:
//   - reason: "missing_token", "invalid_token", or "unknown_subject"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth guard, by reason.",
	},
	[]string{"reason"},
)
