// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"classtrack/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient serves aggregate caching (weekly overviews, stats).
	CacheClient *redis.Client
	// AuthCacheClient tracks live admin session tokens.
	AuthCacheClient *redis.Client
)

// newRedisClient connects to the configured Redis address on the given
// logical DB and fails fast when it is unreachable.
func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Sugar().Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitCache initializes the aggregate cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
}

// GetCacheClient returns the aggregate cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the admin session cache client.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
}

// GetAuthCacheClient returns the admin session cache client.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
