package moderation

import (
	"github.com/fora-social/fora/moderation/contentstore"
	"github.com/fora-social/fora/moderation/engine"
	"github.com/fora-social/fora/moderation/truststore"
)

type Engine = engine.Engine
type Viewer = engine.Viewer
type TopicDraft = engine.TopicDraft
type PostDraft = engine.PostDraft
type Verdict = engine.Verdict
type VerdictSummary = engine.VerdictSummary
type ItemResult = engine.ItemResult

var (
	VerdictApprove = engine.VerdictApprove
	VerdictSpam    = engine.VerdictSpam

	TrustNew      = truststore.StateNew
	TrustApproved = truststore.StateApproved
	TrustSpam     = truststore.StateSpam

	ContentPending  = contentstore.StatePending
	ContentApproved = contentstore.StateApproved
	ContentSpam     = contentstore.StateSpam

	ErrCreationForbidden = engine.ErrCreationForbidden
	ErrUnauthorized      = engine.ErrUnauthorized
	ErrNotFound          = engine.ErrNotFound
)
