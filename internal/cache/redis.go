package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ranchers-app/storefront/internal/domain"
	"github.com/redis/go-redis/v9"
)

// defaultProfileTTL applies when the caller passes no base TTL.
const defaultProfileTTL = 10 * time.Minute

func NewRedisCache(client *redis.Client, baseTTL time.Duration) *RedisCache {
	if baseTTL <= 0 {
		baseTTL = defaultProfileTTL
	}
	return &RedisCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

// ttl spreads expirations by adding up to 20% jitter onto the base, so a
// burst of sign-ins does not expire as one stampede.
func (r RedisCache) ttl() time.Duration {
	jitter := time.Duration(rand.Int63n(int64(r.baseTTL)/5 + 1))
	return r.baseTTL + jitter
}

func (r RedisCache) Get(ctx context.Context, identityID string) (*domain.Profile, error) {
	key := cacheKey(identityID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var profile domain.Profile
	if err2 := json.Unmarshal(data, &profile); err2 != nil {
		return nil, fmt.Errorf("unmarshal profile failed: %w", err2)
	}

	return &profile, nil
}

func (r RedisCache) Set(ctx context.Context, identityID string, profile *domain.Profile) error {
	key := cacheKey(identityID)
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile failed: %w", err)
	}

	if err := r.client.Set(ctx, key, string(payload), r.ttl()).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r RedisCache) Delete(ctx context.Context, identityID string) error {
	key := cacheKey(identityID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func cacheKey(identityID string) string {
	return fmt.Sprintf("profile:%s", identityID)
}
