package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/fora-social/fora/moderation/contentstore"
)

// Visible decides whether a viewer may see an item. Rules, in priority
// order: moderators of the item's forum see everything; authors always see
// their own items; everyone else (anonymous included) sees only approved
// content.
func (eng *Engine) Visible(ctx context.Context, viewer Viewer, item *contentstore.Content) (bool, error) {
	if item.State == contentstore.StateApproved {
		return true, nil
	}
	if viewer.Anonymous {
		return false, nil
	}
	if viewer.Uid == item.AuthorID {
		return true, nil
	}
	ok, err := eng.Authorizer.Authorized(ctx, viewer.Uid, item.ForumID)
	if err != nil {
		return false, fmt.Errorf("checking moderator capability: %w", err)
	}
	return ok, nil
}

// GetContent fetches a single item through the visibility filter. A denial
// is reported as ErrNotFound, indistinguishable from a truly absent item.
func (eng *Engine) GetContent(ctx context.Context, viewer Viewer, id uint64) (*contentstore.Content, error) {
	item, err := eng.Content.Get(ctx, id)
	if errors.Is(err, contentstore.ErrContentNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("reading content item %d: %w", id, err)
	}
	ok, err := eng.Visible(ctx, viewer, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		visibilityNotFoundCount.Inc()
		return nil, ErrNotFound
	}
	return item, nil
}

func (eng *Engine) filterVisible(ctx context.Context, viewer Viewer, items []*contentstore.Content) ([]*contentstore.Content, error) {
	out := make([]*contentstore.Content, 0, len(items))
	for _, item := range items {
		ok, err := eng.Visible(ctx, viewer, item)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// ListForum returns the forum's topics the viewer may see, oldest-first.
func (eng *Engine) ListForum(ctx context.Context, viewer Viewer, forumID uint64) ([]*contentstore.Content, error) {
	items, err := eng.Content.ListForum(ctx, forumID)
	if err != nil {
		return nil, err
	}
	return eng.filterVisible(ctx, viewer, items)
}

// ListTopic returns the topic's posts the viewer may see, oldest-first.
// The topic itself is fetched through the filter first: a topic the viewer
// may not see has no visible posts either, only a not-found.
func (eng *Engine) ListTopic(ctx context.Context, viewer Viewer, topicID uint64) ([]*contentstore.Content, error) {
	if _, err := eng.GetContent(ctx, viewer, topicID); err != nil {
		return nil, err
	}
	items, err := eng.Content.ListTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return eng.filterVisible(ctx, viewer, items)
}
