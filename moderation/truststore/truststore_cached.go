package truststore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedTrustStore wraps another TrustStore with an in-process expirable LRU.
// Set writes through and purges, so a writer's own reads are always fresh.
type CachedTrustStore struct {
	Inner TrustStore
	Data  *expirable.LRU[uint64, TrustState]
}

var _ TrustStore = (*CachedTrustStore)(nil)

func NewCachedTrustStore(inner TrustStore, capacity int, ttl time.Duration) *CachedTrustStore {
	return &CachedTrustStore{
		Inner: inner,
		Data:  expirable.NewLRU[uint64, TrustState](capacity, nil, ttl),
	}
}

func (s *CachedTrustStore) Get(ctx context.Context, uid uint64) (TrustState, error) {
	v, ok := s.Data.Get(uid)
	if ok {
		return v, nil
	}
	v, err := s.Inner.Get(ctx, uid)
	if err != nil {
		return "", err
	}
	s.Data.Add(uid, v)
	return v, nil
}

func (s *CachedTrustStore) Set(ctx context.Context, uid uint64, state TrustState) error {
	if err := s.Inner.Set(ctx, uid, state); err != nil {
		return err
	}
	s.Data.Remove(uid)
	return nil
}
