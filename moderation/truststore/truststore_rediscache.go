package truststore

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// RedisCachedTrustStore wraps another TrustStore with a shared redis cache,
// for multi-process deployments where the inner store is a slow database.
// Set writes through and deletes the cache entry.
type RedisCachedTrustStore struct {
	Inner TrustStore
	Data  *cache.Cache
	TTL   time.Duration
}

var _ TrustStore = (*RedisCachedTrustStore)(nil)

func NewRedisCachedTrustStore(inner TrustStore, redisURL string, ttl time.Duration) (*RedisCachedTrustStore, error) {
	ctx := context.Background()
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}
	data := cache.New(&cache.Options{
		Redis:      rdb,
		LocalCache: cache.NewTinyLFU(10_000, ttl),
	})
	return &RedisCachedTrustStore{
		Inner: inner,
		Data:  data,
		TTL:   ttl,
	}, nil
}

func redisTrustCacheKey(uid uint64) string {
	return "trust-cache/" + strconv.FormatUint(uid, 10)
}

func (s *RedisCachedTrustStore) Get(ctx context.Context, uid uint64) (TrustState, error) {
	var val string
	err := s.Data.Get(ctx, redisTrustCacheKey(uid), &val)
	if err == nil {
		return ParseTrustState(val)
	}
	if err != cache.ErrCacheMiss {
		return "", err
	}
	state, err := s.Inner.Get(ctx, uid)
	if err != nil {
		return "", err
	}
	err = s.Data.Set(&cache.Item{
		Ctx:   ctx,
		Key:   redisTrustCacheKey(uid),
		Value: string(state),
		TTL:   s.TTL,
	})
	if err != nil {
		return "", err
	}
	return state, nil
}

func (s *RedisCachedTrustStore) Set(ctx context.Context, uid uint64, state TrustState) error {
	if err := s.Inner.Set(ctx, uid, state); err != nil {
		return err
	}
	err := s.Data.Delete(ctx, redisTrustCacheKey(uid))
	if err == cache.ErrCacheMiss {
		return nil
	}
	return err
}
