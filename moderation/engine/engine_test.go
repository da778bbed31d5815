package engine

import (
	"context"
	"testing"

	"github.com/fora-social/fora/moderation/contentstore"
	"github.com/fora-social/fora/moderation/truststore"

	"github.com/stretchr/testify/assert"
)

// A new user's first topic lands in the pending queue: invisible to third
// parties (listing and direct fetch), visible to the author and moderators.
func TestFirstTopicPending(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	author := uint64(100)

	topic, err := eng.CreateTopic(ctx, TopicDraft{
		ForumID:  TestForumID,
		AuthorID: author,
		Subject:  "FIRST TOPIC",
		Body:     "User's first words",
	})
	assert.NoError(err)
	assert.Equal(contentstore.StatePending, topic.State)

	// third party browsing the forum index does not see it
	listing, err := eng.ListForum(ctx, UserViewer(200), TestForumID)
	assert.NoError(err)
	assert.Empty(listing)

	listing, err = eng.ListForum(ctx, AnonymousViewer(), TestForumID)
	assert.NoError(err)
	assert.Empty(listing)

	// direct fetch: not-found for a third party, success for the author
	_, err = eng.GetContent(ctx, UserViewer(200), topic.ID)
	assert.ErrorIs(err, ErrNotFound)
	_, err = eng.GetContent(ctx, AnonymousViewer(), topic.ID)
	assert.ErrorIs(err, ErrNotFound)

	got, err := eng.GetContent(ctx, UserViewer(author), topic.ID)
	assert.NoError(err)
	assert.Equal("FIRST TOPIC", got.Subject)

	// moderators see pending content everywhere in their forum
	got, err = eng.GetContent(ctx, UserViewer(TestModeratorUid), topic.ID)
	assert.NoError(err)
	assert.Equal(contentstore.StatePending, got.State)
}

// A pending post inside an approved topic is hidden from other readers of
// the topic.
func TestPendingPostHiddenInTopic(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()

	topic, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: 100, Subject: "general"})
	assert.NoError(err)
	_, err = eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID}, VerdictApprove)
	assert.NoError(err)

	post, err := eng.CreatePost(ctx, PostDraft{TopicID: topic.ID, AuthorID: 101, Body: "BUY VIAGRA"})
	assert.NoError(err)
	assert.Equal(contentstore.StatePending, post.State)

	posts, err := eng.ListTopic(ctx, UserViewer(200), topic.ID)
	assert.NoError(err)
	assert.Empty(posts)

	posts, err = eng.ListTopic(ctx, UserViewer(101), topic.ID)
	assert.NoError(err)
	assert.Len(posts, 1)

	posts, err = eng.ListTopic(ctx, UserViewer(TestModeratorUid), topic.ID)
	assert.NoError(err)
	assert.Len(posts, 1)
}

// Spam-flagged accounts cannot create anything; nothing is persisted.
func TestSpamUserCannotCreate(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	spammer := uint64(300)
	assert.NoError(eng.Trust.Set(ctx, spammer, truststore.StateSpam))

	topic, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: spammer, Subject: "cheap pills"})
	assert.ErrorIs(err, ErrCreationForbidden)
	assert.Nil(topic)

	// an existing approved topic to reply to
	host, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: 100, Subject: "general"})
	assert.NoError(err)
	_, err = eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{host.ID}, VerdictApprove)
	assert.NoError(err)

	post, err := eng.CreatePost(ctx, PostDraft{TopicID: host.ID, AuthorID: spammer, Body: "cheap pills"})
	assert.ErrorIs(err, ErrCreationForbidden)
	assert.Nil(post)

	// queue contains nothing from the spammer
	pending, err := eng.PendingInForum(ctx, TestModeratorUid, TestForumID)
	assert.NoError(err)
	assert.Empty(pending)
}

// Approving a pending post approves the item and promotes the author.
func TestApproveCascade(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	author := uint64(100)

	topic, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: 900, Subject: "general"})
	assert.NoError(err)
	_, err = eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID}, VerdictApprove)
	assert.NoError(err)

	post, err := eng.CreatePost(ctx, PostDraft{TopicID: topic.ID, AuthorID: author, Body: "I am replying to a topic."})
	assert.NoError(err)
	assert.Equal(contentstore.StatePending, post.State)

	summary, err := eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{post.ID}, VerdictApprove)
	assert.NoError(err)
	assert.Equal(1, summary.Moderated())

	got, err := eng.Content.Get(ctx, post.ID)
	assert.NoError(err)
	assert.Equal(contentstore.StateApproved, got.State)

	trust, err := eng.Trust.Get(ctx, author)
	assert.NoError(err)
	assert.Equal(truststore.StateApproved, trust)
}

// Flagging a pending post as spam demotes the author and locks them out of
// future creation.
func TestSpamCascade(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	author := uint64(100)

	topic, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: author, Subject: "totally legit"})
	assert.NoError(err)

	summary, err := eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{topic.ID}, VerdictSpam)
	assert.NoError(err)
	assert.Equal(1, summary.Moderated())

	got, err := eng.Content.Get(ctx, topic.ID)
	assert.NoError(err)
	assert.Equal(contentstore.StateSpam, got.State)

	trust, err := eng.Trust.Get(ctx, author)
	assert.NoError(err)
	assert.Equal(truststore.StateSpam, trust)

	_, err = eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: author, Subject: "again"})
	assert.ErrorIs(err, ErrCreationForbidden)
}

// Once promoted, an author's later content bypasses the queue entirely.
func TestApprovedUserBypassesQueue(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	author := uint64(100)

	first, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: author, Subject: "FIRST TOPIC"})
	assert.NoError(err)
	assert.Equal(contentstore.StatePending, first.State)

	_, err = eng.ApplyVerdict(ctx, TestModeratorUid, []uint64{first.ID}, VerdictApprove)
	assert.NoError(err)

	second, err := eng.CreateTopic(ctx, TopicDraft{ForumID: TestForumID, AuthorID: author, Subject: "SECOND TOPIC"})
	assert.NoError(err)
	assert.Equal(contentstore.StateApproved, second.State)

	// immediately visible to everyone, no verdict needed
	got, err := eng.GetContent(ctx, AnonymousViewer(), second.ID)
	assert.NoError(err)
	assert.Equal("SECOND TOPIC", got.Subject)

	pending, err := eng.PendingInForum(ctx, TestModeratorUid, TestForumID)
	assert.NoError(err)
	assert.Empty(pending)
}
