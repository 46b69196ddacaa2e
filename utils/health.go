package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus reports reachability of the service's external dependencies.
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	CacheRedis bool      `json:"cacheRedis"`
	AuthRedis  bool      `json:"authRedis"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings Mongo and both Redis roles once a minute and keeps
// the latest snapshot in memory for the health endpoint.
func StartHealthMonitor(cacheClient, authClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			snapshot := HealthStatus{
				Mongo:      mongoClient.Ping(ctx, nil) == nil,
				CacheRedis: cacheClient.Ping(ctx).Err() == nil,
				AuthRedis:  authClient.Ping(ctx).Err() == nil,
				CheckedAt:  time.Now(),
			}
			if !snapshot.Mongo || !snapshot.CacheRedis || !snapshot.AuthRedis {
				GetLogger().Warn("Dependency health check failed",
					zap.Bool("mongo", snapshot.Mongo),
					zap.Bool("cacheRedis", snapshot.CacheRedis),
					zap.Bool("authRedis", snapshot.AuthRedis))
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
