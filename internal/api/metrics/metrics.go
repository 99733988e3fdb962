// Package metrics defines and registers all custom Prometheus metrics for
// the registration portal. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// SubmissionsTotal counts registration attempts by outcome.
// Label:
//   - outcome: "registered", "rejected", "upstream_error", "timeout", "unreachable"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of registration submissions, by outcome.",
	},
	[]string{"outcome"},
)

// SubmissionsInFlight tracks registrations currently being forwarded.
var SubmissionsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "submissions_in_flight",
		Help:      "Number of registration submissions currently in flight.",
	},
)

// LookupsTotal counts manager-code lookups.
// Label:
//   - result: "valid", "invalid", "error"
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manager_code_lookups_total",
		Help:      "Total number of manager-code lookups, by result.",
	},
	[]string{"result"},
)

// ExportsTotal counts report downloads.
// Labels:
//   - report: "players_excel", "roster_word", "roster_pdf", "authorizations_pdf"
//   - outcome: "ok" or "error"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_exports_total",
		Help:      "Total number of report downloads, by report and outcome.",
	},
	[]string{"report", "outcome"},
)
