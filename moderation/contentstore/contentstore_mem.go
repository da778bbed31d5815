package contentstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type MemContentStore struct {
	lk     sync.RWMutex
	nextID uint64
	items  map[uint64]*Content
}

var _ ContentStore = (*MemContentStore)(nil)

func NewMemContentStore() *MemContentStore {
	return &MemContentStore{
		nextID: 1,
		items:  make(map[uint64]*Content),
	}
}

func (s *MemContentStore) Create(ctx context.Context, item *Content) error {
	if _, err := ParseState(string(item.State)); err != nil {
		return err
	}
	s.lk.Lock()
	defer s.lk.Unlock()
	if item.ID == 0 {
		item.ID = s.nextID
		s.nextID++
	} else if item.ID >= s.nextID {
		s.nextID = item.ID + 1
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *MemContentStore) Get(ctx context.Context, id uint64) (*Content, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, ErrContentNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *MemContentStore) SetState(ctx context.Context, id uint64, state State) error {
	if _, err := ParseState(string(state)); err != nil {
		return err
	}
	s.lk.Lock()
	defer s.lk.Unlock()
	item, ok := s.items[id]
	if !ok {
		return fmt.Errorf("setting state on item %d: %w", id, ErrContentNotFound)
	}
	item.State = state
	return nil
}

func (s *MemContentStore) list(match func(*Content) bool) []*Content {
	s.lk.RLock()
	defer s.lk.RUnlock()
	var out []*Content
	for _, item := range s.items {
		if match(item) {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *MemContentStore) ListForum(ctx context.Context, forumID uint64) ([]*Content, error) {
	return s.list(func(c *Content) bool {
		return c.Kind == KindTopic && c.ForumID == forumID
	}), nil
}

func (s *MemContentStore) ListTopic(ctx context.Context, topicID uint64) ([]*Content, error) {
	return s.list(func(c *Content) bool {
		return c.Kind == KindPost && c.TopicID == topicID
	}), nil
}

func (s *MemContentStore) ListPendingForum(ctx context.Context, forumID uint64) ([]*Content, error) {
	return s.list(func(c *Content) bool {
		return c.ForumID == forumID && c.State == StatePending
	}), nil
}

func (s *MemContentStore) ListPendingTopic(ctx context.Context, topicID uint64) ([]*Content, error) {
	return s.list(func(c *Content) bool {
		return c.Kind == KindPost && c.TopicID == topicID && c.State == StatePending
	}), nil
}
