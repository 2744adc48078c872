package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStructureCacheRepository struct {
	redis *redis.Client
}

func NewRedisStructureCacheRepository(redisClient *redis.Client) *RedisStructureCacheRepository {
	return &RedisStructureCacheRepository{redis: redisClient}
}

func structureKey(userID uint) string {
	return fmt.Sprintf("library:%d:structure", userID)
}

func generationKey(userID uint) string {
	return fmt.Sprintf("library:%d:generation", userID)
}

// Get returns the cached slot, or nil on a miss. A stored value that no
// longer parses is deleted and reported as a miss.
func (r *RedisStructureCacheRepository) Get(ctx context.Context, userID uint) (*CachedStructure, error) {
	raw, err := r.redis.Get(ctx, structureKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry CachedStructure
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		r.redis.Del(ctx, structureKey(userID))
		return nil, nil
	}
	return &entry, nil
}

func (r *RedisStructureCacheRepository) Put(ctx context.Context, userID uint, entry *CachedStructure, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, structureKey(userID), raw, ttl).Err()
}

func (r *RedisStructureCacheRepository) Clear(ctx context.Context, userID uint) error {
	return r.redis.Del(ctx, structureKey(userID)).Err()
}

func (r *RedisStructureCacheRepository) BumpGeneration(ctx context.Context, userID uint) (int64, error) {
	return r.redis.Incr(ctx, generationKey(userID)).Result()
}

func (r *RedisStructureCacheRepository) Generation(ctx context.Context, userID uint) (int64, error) {
	gen, err := r.redis.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
