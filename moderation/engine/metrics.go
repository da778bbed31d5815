package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var contentCreatedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fora_content_created",
	Help: "Number of content items created, by kind and initial state",
}, []string{"kind", "state"})

var creationForbiddenCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fora_content_creation_forbidden",
	Help: "Number of creations refused because the account is spam-flagged",
}, []string{"kind"})

var verdictOutcomeCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fora_verdict_items",
	Help: "Number of items processed by moderator verdicts, by outcome",
}, []string{"verdict", "outcome"})

var trustCascadeCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fora_trust_cascades",
	Help: "Number of trust state writes cascaded from verdicts",
}, []string{"state"})

var visibilityNotFoundCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fora_visibility_not_found",
	Help: "Number of single-item reads denied by the visibility filter",
})
