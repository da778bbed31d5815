package truststore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var redisTrustPrefix string = "trust/"

type RedisTrustStore struct {
	Client *redis.Client
}

var _ TrustStore = (*RedisTrustStore)(nil)

func NewRedisTrustStore(redisURL string) (*RedisTrustStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(context.TODO()).Result()
	if err != nil {
		return nil, err
	}
	rts := RedisTrustStore{
		Client: rdb,
	}
	return &rts, nil
}

func redisTrustKey(uid uint64) string {
	return redisTrustPrefix + strconv.FormatUint(uid, 10)
}

func (s *RedisTrustStore) Get(ctx context.Context, uid uint64) (TrustState, error) {
	val, err := s.Client.Get(ctx, redisTrustKey(uid)).Result()
	if err == redis.Nil {
		return StateNew, nil
	} else if err != nil {
		return "", err
	}
	return ParseTrustState(val)
}

// no expiration: trust state is authoritative, not a cache entry
func (s *RedisTrustStore) Set(ctx context.Context, uid uint64, state TrustState) error {
	if _, err := ParseTrustState(string(state)); err != nil {
		return fmt.Errorf("setting trust state for uid %d: %w", uid, err)
	}
	return s.Client.Set(ctx, redisTrustKey(uid), string(state), 0).Err()
}
