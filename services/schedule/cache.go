// File: services/schedule/cache.go
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"classtrack/models"

	"github.com/go-redis/redis/v8"
)

// AggregateCache caches per-class weekly overviews and stats. Implementations
// must return (nil, nil) on a miss.
type AggregateCache interface {
	GetOverview(ctx context.Context, classID string) (*models.WeeklyOverview, error)
	SetOverview(ctx context.Context, classID string, overview *models.WeeklyOverview) error
	GetStats(ctx context.Context, classID string) (*models.ScheduleStats, error)
	SetStats(ctx context.Context, classID string, stats *models.ScheduleStats) error
	Invalidate(ctx context.Context, classID string) error
}

type RedisAggregateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAggregateCache(client *redis.Client, ttl time.Duration) AggregateCache {
	return &RedisAggregateCache{client: client, ttl: ttl}
}

const (
	overviewKeyPrefix = "schedules:overview:"
	statsKeyPrefix    = "schedules:stats:"
)

func overviewKey(classID string) string {
	return fmt.Sprintf("%s%s", overviewKeyPrefix, classID)
}

func statsKey(classID string) string {
	return fmt.Sprintf("%s%s", statsKeyPrefix, classID)
}

func (c *RedisAggregateCache) GetOverview(ctx context.Context, classID string) (*models.WeeklyOverview, error) {
	val, err := c.client.Get(ctx, overviewKey(classID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var overview models.WeeklyOverview
	if err := json.Unmarshal([]byte(val), &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (c *RedisAggregateCache) SetOverview(ctx context.Context, classID string, overview *models.WeeklyOverview) error {
	data, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, overviewKey(classID), data, c.ttl).Err()
}

func (c *RedisAggregateCache) GetStats(ctx context.Context, classID string) (*models.ScheduleStats, error) {
	val, err := c.client.Get(ctx, statsKey(classID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats models.ScheduleStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *RedisAggregateCache) SetStats(ctx context.Context, classID string, stats *models.ScheduleStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(classID), data, c.ttl).Err()
}

func (c *RedisAggregateCache) Invalidate(ctx context.Context, classID string) error {
	return c.client.Del(ctx, overviewKey(classID), statsKey(classID)).Err()
}

// invalidateAggregates drops cached aggregates after any mutation touching
// the class. Cache failures are ignored; the next read recomputes.
func (s *DefaultScheduleService) invalidateAggregates(ctx context.Context, classID string) {
	if s.Cache == nil {
		return
	}
	_ = s.Cache.Invalidate(ctx, classID)
}
