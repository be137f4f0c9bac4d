// Package observability provides application metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wecare_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ModerationBlocks counts forum submissions rejected by the moderation
	// engine, by content kind (post or comment).
	ModerationBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wecare_moderation_blocks_total",
		Help: "Total number of forum submissions blocked by moderation",
	}, []string{"kind"})

	// TriageInterceptions counts chat messages answered with the fixed
	// crisis message instead of a generated reply.
	TriageInterceptions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wecare_triage_interceptions_total",
		Help: "Total number of chat messages intercepted by distress triage",
	})

	// AssistantFallbacks counts delegated generation failures converted to
	// the fallback reply.
	AssistantFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wecare_assistant_fallbacks_total",
		Help: "Total number of assistant replies served from the static fallback",
	})
)
