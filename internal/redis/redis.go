package redis

import (
	"context"
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
		log.Error().Err(err).Str("key", key).Msg("failed to add key to redis")
		return
	}
}

// Get returns the cached value for key, or "" when absent or on error.
func Get(ctx context.Context, key string) string {
	if Rdb == nil {
		return ""
	}
	val, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Error().Err(err).Str("key", key).Msg("failed to read key from redis")
		}
		return ""
	}
	return val
}

// PhraseKey is the cache key for the rendered phrase of one timezone. The
// ticker refreshes it on every minute boundary.
func PhraseKey(timezone string) string {
	return "phrase:" + timezone
}
