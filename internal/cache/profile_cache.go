package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileCache caches profile existence lookups so the feed and onboarding
// checks do not hit the database on every request.
type ProfileCache interface {
	GetExists(ctx context.Context, userID uuid.UUID) (exists bool, ok bool)
	SetExists(ctx context.Context, userID uuid.UUID, exists bool)
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type ProfileCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewProfileCache creates a redis-backed profile cache. A nil client is
// tolerated and turns every lookup into a miss.
func NewProfileCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) ProfileCache {
	return &ProfileCacheImpl{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func profileExistsKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:exists:%s", userID.String())
}

// GetExists returns the cached existence flag. The second return value
// reports whether the cache held an entry at all.
func (c *ProfileCacheImpl) GetExists(ctx context.Context, userID uuid.UUID) (bool, bool) {
	if c.client == nil {
		return false, false
	}

	val, err := c.client.Get(ctx, profileExistsKey(userID)).Result()
	if err == redis.Nil {
		return false, false
	}
	if err != nil {
		c.logger.Warn("Profile cache read failed", zap.String("userID", userID.String()), zap.Error(err))
		return false, false
	}

	return val == "1", true
}

// SetExists stores the existence flag with the configured TTL
func (c *ProfileCacheImpl) SetExists(ctx context.Context, userID uuid.UUID, exists bool) {
	if c.client == nil {
		return
	}

	val := "0"
	if exists {
		val = "1"
	}
	if err := c.client.Set(ctx, profileExistsKey(userID), val, c.ttl).Err(); err != nil {
		c.logger.Warn("Profile cache write failed", zap.String("userID", userID.String()), zap.Error(err))
	}
}

// Invalidate drops the cached entry after a profile write
func (c *ProfileCacheImpl) Invalidate(ctx context.Context, userID uuid.UUID) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, profileExistsKey(userID)).Err(); err != nil {
		c.logger.Warn("Profile cache invalidation failed", zap.String("userID", userID.String()), zap.Error(err))
	}
}
