package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisGoogleTokenRepository struct {
	redis *redis.Client
}

func NewRedisGoogleTokenRepository(redisClient *redis.Client) *RedisGoogleTokenRepository {
	return &RedisGoogleTokenRepository{redis: redisClient}
}

func googleTokenKey(userID uint) string {
	return fmt.Sprintf("gdrive:%d:token", userID)
}

func (r *RedisGoogleTokenRepository) Save(ctx context.Context, userID uint, accessToken string, ttl time.Duration) error {
	return r.redis.Set(ctx, googleTokenKey(userID), accessToken, ttl).Err()
}

// Get returns "" when no token is stored; the caller treats that as an
// expired Google session.
func (r *RedisGoogleTokenRepository) Get(ctx context.Context, userID uint) (string, error) {
	token, err := r.redis.Get(ctx, googleTokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (r *RedisGoogleTokenRepository) Delete(ctx context.Context, userID uint) error {
	return r.redis.Del(ctx, googleTokenKey(userID)).Err()
}
