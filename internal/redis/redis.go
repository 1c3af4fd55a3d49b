package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write cache key")
	}
}

// Get returns the cached value and true on a hit. Misses and transport
// errors both read as "not cached".
func Get(ctx context.Context, key string) (string, bool) {
	if Rdb == nil {
		return "", false
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", key).Msg("failed to read cache key")
		}
		return "", false
	}
	return value, true
}

func Del(ctx context.Context, keys ...string) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Del(ctx, keys...).Err(); err != nil {
		log.Error().Err(err).Msg("failed to drop cache keys")
	}
}
