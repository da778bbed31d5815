package truststore

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
)

type MemTrustStore struct {
	Data *xsync.MapOf[uint64, TrustState]
}

func NewMemTrustStore() MemTrustStore {
	return MemTrustStore{
		Data: xsync.NewMapOf[uint64, TrustState](),
	}
}

func (s MemTrustStore) Get(ctx context.Context, uid uint64) (TrustState, error) {
	v, ok := s.Data.Load(uid)
	if !ok {
		return StateNew, nil
	}
	return v, nil
}

func (s MemTrustStore) Set(ctx context.Context, uid uint64, state TrustState) error {
	if _, err := ParseTrustState(string(state)); err != nil {
		return fmt.Errorf("setting trust state for uid %d: %w", uid, err)
	}
	s.Data.Store(uid, state)
	return nil
}
