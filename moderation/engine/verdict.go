package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/fora-social/fora/moderation/contentstore"
	"github.com/fora-social/fora/moderation/truststore"
)

// A moderator's binary decision on one or more content items.
type Verdict string

const (
	VerdictApprove = Verdict("approve")
	VerdictSpam    = Verdict("spam")
)

func ParseVerdict(raw string) (Verdict, error) {
	switch Verdict(raw) {
	case VerdictApprove, VerdictSpam:
		return Verdict(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVerdict, raw)
	}
}

func (v Verdict) contentState() contentstore.State {
	if v == VerdictSpam {
		return contentstore.StateSpam
	}
	return contentstore.StateApproved
}

func (v Verdict) trustState() truststore.TrustState {
	if v == VerdictSpam {
		return truststore.StateSpam
	}
	return truststore.StateApproved
}

type ItemOutcome string

const (
	// item transitioned out of pending; trust cascade fired
	OutcomeModerated = ItemOutcome("moderated")
	// item was already in a terminal state; nothing written
	OutcomeUnchanged = ItemOutcome("unchanged")
	// moderator lacks capability for this item's forum
	OutcomeUnauthorized = ItemOutcome("unauthorized")
	OutcomeNotFound     = ItemOutcome("not_found")
	OutcomeError        = ItemOutcome("error")
)

type ItemResult struct {
	ID      uint64
	Outcome ItemOutcome
	Err     error
}

// VerdictSummary reports per-item results. Callers normally collapse it
// into a single aggregate notification; the per-item detail exists for
// logs and operator tooling.
type VerdictSummary struct {
	Verdict Verdict
	Results []ItemResult
}

func (s *VerdictSummary) Moderated() int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == OutcomeModerated {
			n++
		}
	}
	return n
}

// ApplyVerdict applies a moderator's verdict to a batch of items, each as
// an independent unit of work: a failure on one item never rolls back the
// others. Authorization is checked per item against that item's forum, so a
// mixed-forum batch is filtered down to the forums this moderator covers.
// If nothing in the batch was authorized, the whole call fails with
// ErrUnauthorized.
//
// Only pending items transition. The verdict cascades to the author's
// trust state (approve → approved, spam → spam), skipping the write when
// the trust state already matches, so re-submitting a verdict never
// re-fires downstream effects.
func (eng *Engine) ApplyVerdict(ctx context.Context, moderator uint64, itemIDs []uint64, verdict Verdict) (*VerdictSummary, error) {
	if _, err := ParseVerdict(string(verdict)); err != nil {
		return nil, err
	}

	summary := &VerdictSummary{Verdict: verdict}
	authorized := 0
	unauthorized := 0
	for _, id := range itemIDs {
		res := eng.applyVerdictItem(ctx, moderator, id, verdict)
		switch res.Outcome {
		case OutcomeUnauthorized:
			unauthorized++
		case OutcomeModerated, OutcomeUnchanged:
			authorized++
		}
		verdictOutcomeCount.WithLabelValues(string(verdict), string(res.Outcome)).Inc()
		summary.Results = append(summary.Results, res)
	}

	if authorized == 0 && unauthorized > 0 {
		return summary, ErrUnauthorized
	}
	eng.logger().Info("verdict applied", "moderator", moderator, "verdict", verdict, "items", len(itemIDs), "moderated", summary.Moderated())
	return summary, nil
}

func (eng *Engine) applyVerdictItem(ctx context.Context, moderator uint64, id uint64, verdict Verdict) ItemResult {
	unlock := eng.itemLks.lock(id)
	defer unlock()

	item, err := eng.Content.Get(ctx, id)
	if errors.Is(err, contentstore.ErrContentNotFound) {
		return ItemResult{ID: id, Outcome: OutcomeNotFound, Err: err}
	} else if err != nil {
		return ItemResult{ID: id, Outcome: OutcomeError, Err: err}
	}

	ok, err := eng.Authorizer.Authorized(ctx, moderator, item.ForumID)
	if err != nil {
		return ItemResult{ID: id, Outcome: OutcomeError, Err: err}
	}
	if !ok {
		eng.logger().Warn("unauthorized moderation attempt", "moderator", moderator, "item", id, "forum", item.ForumID)
		return ItemResult{ID: id, Outcome: OutcomeUnauthorized, Err: ErrUnauthorized}
	}

	// approved and spam are terminal; a repeat submission is a no-op and
	// must not re-fire the trust cascade
	if item.State.Terminal() {
		return ItemResult{ID: id, Outcome: OutcomeUnchanged}
	}

	if err := eng.Content.SetState(ctx, id, verdict.contentState()); err != nil {
		return ItemResult{ID: id, Outcome: OutcomeError, Err: err}
	}
	eng.logger().Info("item moderated", "item", id, "verdict", verdict, "moderator", moderator, "author", item.AuthorID)

	if err := eng.cascadeTrust(ctx, item.AuthorID, verdict.trustState()); err != nil {
		return ItemResult{ID: id, Outcome: OutcomeError, Err: err}
	}
	return ItemResult{ID: id, Outcome: OutcomeModerated}
}

// cascadeTrust writes the author's new trust state, holding the same
// per-user lock as the creation gate and skipping the write when nothing
// would change.
func (eng *Engine) cascadeTrust(ctx context.Context, author uint64, target truststore.TrustState) error {
	unlock := eng.userLks.lock(author)
	defer unlock()

	current, err := eng.Trust.Get(ctx, author)
	if err != nil {
		return fmt.Errorf("reading trust state for uid %d: %w", author, err)
	}
	if current == target {
		return nil
	}
	if err := eng.Trust.Set(ctx, author, target); err != nil {
		return fmt.Errorf("cascading trust state for uid %d: %w", author, err)
	}
	trustCascadeCount.WithLabelValues(string(target)).Inc()
	eng.logger().Info("trust state cascaded", "author", author, "state", target)
	return nil
}
