package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/fora-social/fora/moderation/contentstore"
)

// Queue views are derived: any pending item in a forum is implicitly queued
// for that forum's moderators. Nothing is materialized, so content state and
// queue membership can't drift apart.

// PendingInForum returns every pending item (topics and posts) across a
// forum, oldest-first. This is the mass-moderation view.
func (eng *Engine) PendingInForum(ctx context.Context, moderator uint64, forumID uint64) ([]*contentstore.Content, error) {
	ok, err := eng.Authorizer.Authorized(ctx, moderator, forumID)
	if err != nil {
		return nil, fmt.Errorf("checking moderator capability: %w", err)
	}
	if !ok {
		return nil, ErrUnauthorized
	}
	return eng.Content.ListPendingForum(ctx, forumID)
}

// PendingInTopic returns the pending posts of one topic, oldest-first. This
// is the singular-moderation view.
func (eng *Engine) PendingInTopic(ctx context.Context, moderator uint64, topicID uint64) ([]*contentstore.Content, error) {
	topic, err := eng.Content.Get(ctx, topicID)
	if errors.Is(err, contentstore.ErrContentNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("resolving topic %d: %w", topicID, err)
	}
	ok, err := eng.Authorizer.Authorized(ctx, moderator, topic.ForumID)
	if err != nil {
		return nil, fmt.Errorf("checking moderator capability: %w", err)
	}
	if !ok {
		return nil, ErrUnauthorized
	}
	return eng.Content.ListPendingTopic(ctx, topicID)
}
