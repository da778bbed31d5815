package contentstore

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Per-item moderation state. Items are born "pending" or "approved"
// depending on the author's trust state; "approved" and "spam" are terminal.
type State string

const (
	StatePending  = State("pending")
	StateApproved = State("approved")
	StateSpam     = State("spam")
)

var ErrInvalidState = errors.New("invalid moderation state")

func ParseState(raw string) (State, error) {
	switch State(raw) {
	case StatePending, StateApproved, StateSpam:
		return State(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidState, raw)
	}
}

func (s State) Terminal() bool {
	return s == StateApproved || s == StateSpam
}

type Kind string

const (
	KindTopic = Kind("topic")
	KindPost  = Kind("post")
)

var ErrContentNotFound = errors.New("content not found")

// Content is the uniform topic/post item. A topic belongs to a forum and
// carries a subject; a post belongs to a topic and carries the forum id
// denormalized, so forum-scoped queries never need a join.
type Content struct {
	ID        uint64
	Kind      Kind
	ForumID   uint64
	TopicID   uint64
	AuthorID  uint64
	State     State
	CreatedAt time.Time
	Subject   string
	Body      string
}

// ContentStore persists content items and answers the listing queries the
// engine filters. All listings are oldest-first by creation time, which
// keeps the moderation queue ordering deterministic.
//
// There is no separate queue storage: the pending listings are plain
// filtered queries over item state.
type ContentStore interface {
	// Create persists a new item. Implementations assign ID and CreatedAt
	// when they are zero.
	Create(ctx context.Context, item *Content) error
	Get(ctx context.Context, id uint64) (*Content, error)
	SetState(ctx context.Context, id uint64, state State) error
	// ListForum returns the topics of a forum.
	ListForum(ctx context.Context, forumID uint64) ([]*Content, error)
	// ListTopic returns the posts of a topic.
	ListTopic(ctx context.Context, topicID uint64) ([]*Content, error)
	// ListPendingForum returns all pending items (topics and posts) across
	// a forum.
	ListPendingForum(ctx context.Context, forumID uint64) ([]*Content, error)
	// ListPendingTopic returns the pending posts of a topic.
	ListPendingTopic(ctx context.Context, topicID uint64) ([]*Content, error)
}
