package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecisionsTotal counts moderation decisions by resulting status.
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordgate_decisions_total",
			Help: "Total number of moderation decisions by status",
		},
		[]string{"status"},
	)

	// ModerationDuration tracks decision latency.
	ModerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordgate_moderation_duration_seconds",
			Help:    "Moderation decision duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	// RuleReloadsTotal counts successful rule reloads by kind.
	RuleReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordgate_rule_reloads_total",
			Help: "Total number of successful rule reloads by kind",
		},
		[]string{"kind"},
	)

	// RuleReloadFailuresTotal counts rejected reloads by kind.
	RuleReloadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordgate_rule_reload_failures_total",
			Help: "Total number of rejected rule reloads by kind",
		},
		[]string{"kind"},
	)
)

// Reload kind label values.
const (
	KindLiteral = "literal"
	KindRegex   = "regex"
	KindSetting = "setting"
)
