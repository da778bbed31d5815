package engine

import (
	"context"
	"testing"

	"github.com/fora-social/fora/moderation/contentstore"
	"github.com/fora-social/fora/moderation/truststore"

	"github.com/stretchr/testify/assert"
)

// Re-submitting a verdict on an already-terminal item is a no-op and does
// not re-fire the trust cascade.
func TestVerdictIdempotent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	author := uint64(100)

	topic, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: author, Subject: "hello"})
	assert.NoError(err)

	summary, err := eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID}, VerdictApprove)
	assert.NoError(err)
	assert.Equal(1, summary.Moderated())

	// reset the trust state out-of-band; the repeat verdict must not put
	// it back, since the item does not transition again
	assert.NoError(eng.Trust.Set(ctx, author, truststore.StateNew))

	summary, err = eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID}, VerdictApprove)
	assert.NoError(err)
	assert.Equal(0, summary.Moderated())
	assert.Equal(OutcomeUnchanged, summary.Results[0].Outcome)

	trust, err := eng.Trust.Get(ctx, author)
	assert.NoError(err)
	assert.Equal(truststore.StateNew, trust)

	// terminal states don't flip either
	summary, err = eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID}, VerdictSpam)
	assert.NoError(err)
	assert.Equal(0, summary.Moderated())
	got, err := eng.Content.Get(ctx, topic.ID)
	assert.NoError(err)
	assert.Equal(contentstore.StateApproved, got.State)
}

// A mixed-forum batch is filtered: items outside the moderator's forums are
// skipped without rolling back the rest.
func TestVerdictMixedForumBatch(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()

	mine, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: 100, Subject: "in scope"})
	assert.NoError(err)
	other, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestOtherForumID, AuthorID: 101, Subject: "out of scope"})
	assert.NoError(err)

	summary, err := eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{mine.ID, other.ID}, VerdictApprove)
	assert.NoError(err)
	assert.Equal(1, summary.Moderated())
	assert.Equal(OutcomeModerated, summary.Results[0].Outcome)
	assert.Equal(OutcomeUnauthorized, summary.Results[1].Outcome)

	got, err := eng.Content.Get(ctx, mine.ID)
	assert.NoError(err)
	assert.Equal(contentstore.StateApproved, got.State)

	got, err = eng.Content.Get(ctx, other.ID)
	assert.NoError(err)
	assert.Equal(contentstore.StatePending, got.State)

	// the out-of-scope author's trust is untouched
	trust, err := eng.Trust.Get(ctx, 101)
	assert.NoError(err)
	assert.Equal(truststore.StateNew, trust)
}

// A batch with nothing the moderator may touch fails outright.
func TestVerdictFullyUnauthorized(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()

	topic, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestOtherForumID, AuthorID: 100, Subject: "elsewhere"})
	assert.NoError(err)

	// wrong forum for this moderator
	_, err = eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID}, VerdictApprove)
	assert.ErrorIs(err, ErrUnauthorized)

	// plain non-moderator
	_, err = eng.ApplyVerdict(ctx, 999, []uint64{topic.ID}, VerdictApprove)
	assert.ErrorIs(err, ErrUnauthorized)

	got, err := eng.Content.Get(ctx, topic.ID)
	assert.NoError(err)
	assert.Equal(contentstore.StatePending, got.State)
}

func TestVerdictEdgeCases(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()

	_, err := eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{1}, Verdict("delete"))
	assert.ErrorIs(err, ErrInvalidVerdict)

	// unknown items are reported per-item, not as a batch failure
	topic, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: 100, Subject: "hello"})
	assert.NoError(err)
	summary, err := eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID, 9999}, VerdictApprove)
	assert.NoError(err)
	assert.Equal(1, summary.Moderated())
	assert.Equal(OutcomeNotFound, summary.Results[1].Outcome)

	// empty batch is a successful no-op
	summary, err = eng.ApplyVerdict(ctx, TestModeratorUid, nil, VerdictApprove)
	assert.NoError(err)
	assert.Equal(0, summary.Moderated())
}

// Two moderators racing on one item: the second write is absorbed as a
// no-op, the cascade fires once.
func TestVerdictConcurrentModeration(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	author := uint64(100)

	topic, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: author, Subject: "contended"})
	assert.NoError(err)

	done := make(chan *VerdictSummary, 2)
	for i := 0; i < 2; i++ {
		go func() {
			summary, err := eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID}, VerdictApprove)
			assert.NoError(err)
			done <- summary
		}()
	}
	moderated := 0
	for i := 0; i < 2; i++ {
		moderated += (<-done).Moderated()
	}
	assert.Equal(1, moderated)

	trust, err := eng.Trust.Get(ctx, author)
	assert.NoError(err)
	assert.Equal(truststore.StateApproved, trust)
}
