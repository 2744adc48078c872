package repositories

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisExpansionRepository struct {
	redis *redis.Client
}

func NewRedisExpansionRepository(redisClient *redis.Client) *RedisExpansionRepository {
	return &RedisExpansionRepository{redis: redisClient}
}

func expansionKey(userID uint) string {
	return fmt.Sprintf("library:%d:expanded", userID)
}

func (r *RedisExpansionRepository) Contains(ctx context.Context, userID uint, folderID string) (bool, error) {
	return r.redis.SIsMember(ctx, expansionKey(userID), folderID).Result()
}

func (r *RedisExpansionRepository) Add(ctx context.Context, userID uint, folderID string) error {
	return r.redis.SAdd(ctx, expansionKey(userID), folderID).Err()
}

func (r *RedisExpansionRepository) Remove(ctx context.Context, userID uint, folderID string) error {
	return r.redis.SRem(ctx, expansionKey(userID), folderID).Err()
}

func (r *RedisExpansionRepository) Members(ctx context.Context, userID uint) ([]string, error) {
	return r.redis.SMembers(ctx, expansionKey(userID)).Result()
}

func (r *RedisExpansionRepository) Clear(ctx context.Context, userID uint) error {
	return r.redis.Del(ctx, expansionKey(userID)).Err()
}
