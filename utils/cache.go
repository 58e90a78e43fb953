package utils

import (
	"context"
	"time"

	"octobridge/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient builds the Redis client used for the supplier catalogue
// cache. Returns nil when Redis is unreachable; callers treat a nil client
// as cache-disabled rather than failing startup, since the adapter works
// without it.
func NewCacheClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Sugar().Warnf("Redis unavailable, product cache disabled: %v", err)
		return nil
	}
	return client
}
