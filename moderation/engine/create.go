package engine

import (
	"context"
	"fmt"

	"github.com/fora-social/fora/moderation/contentstore"
	"github.com/fora-social/fora/moderation/truststore"
)

type TopicDraft struct {
	ForumID  uint64
	AuthorID uint64
	Subject  string
	Body     string
}

type PostDraft struct {
	TopicID  uint64
	AuthorID uint64
	Body     string
}

// CreateTopic gates a new topic on the author's trust state: spam accounts
// are refused before anything is instantiated, approved accounts get an
// immediately-visible topic, everyone else lands in the pending queue.
func (eng *Engine) CreateTopic(ctx context.Context, draft TopicDraft) (*contentstore.Content, error) {
	item := &contentstore.Content{
		Kind:     contentstore.KindTopic,
		ForumID:  draft.ForumID,
		AuthorID: draft.AuthorID,
		Subject:  draft.Subject,
		Body:     draft.Body,
	}
	return eng.createContent(ctx, item)
}

// CreatePost is the reply path; the new post inherits the topic's forum.
// The topic is resolved through the visibility filter: replying to a topic
// the author may not see reports not-found, same as viewing one.
func (eng *Engine) CreatePost(ctx context.Context, draft PostDraft) (*contentstore.Content, error) {
	topic, err := eng.GetContent(ctx, UserViewer(draft.AuthorID), draft.TopicID)
	if err != nil {
		return nil, err
	}
	if topic.Kind != contentstore.KindTopic {
		return nil, ErrNotFound
	}
	item := &contentstore.Content{
		Kind:     contentstore.KindPost,
		ForumID:  topic.ForumID,
		TopicID:  topic.ID,
		AuthorID: draft.AuthorID,
		Body:     draft.Body,
	}
	return eng.createContent(ctx, item)
}

// The author's lock is held across the trust read and the persist, so a
// concurrent spam demotion can't race a creation through the gate.
func (eng *Engine) createContent(ctx context.Context, item *contentstore.Content) (*contentstore.Content, error) {
	unlock := eng.userLks.lock(item.AuthorID)
	defer unlock()

	trust, err := eng.Trust.Get(ctx, item.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("reading author trust state: %w", err)
	}

	switch trust {
	case truststore.StateSpam:
		creationForbiddenCount.WithLabelValues(string(item.Kind)).Inc()
		eng.logger().Info("content creation refused", "author", item.AuthorID, "kind", item.Kind)
		return nil, ErrCreationForbidden
	case truststore.StateApproved:
		item.State = contentstore.StateApproved
	default:
		item.State = contentstore.StatePending
	}

	if err := eng.Content.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("persisting content item: %w", err)
	}
	contentCreatedCount.WithLabelValues(string(item.Kind), string(item.State)).Inc()
	eng.logger().Info("content created", "item", item.ID, "kind", item.Kind, "state", item.State, "author", item.AuthorID)
	return item, nil
}
