package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"

	"github.com/redis/go-redis/v9"
)

// RateScheduleCache is a read-through cache in front of a rate-rule source.
// Redis failures are logged and bypassed; they never fail a lookup.
type RateScheduleCache struct {
	next   pricing.RateRuleSource
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewRateScheduleCache(next pricing.RateRuleSource, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *RateScheduleCache {
	return &RateScheduleCache{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *RateScheduleCache) ScheduleFor(ctx context.Context, homestayID int64, iv stay.Interval) (pricing.RateSchedule, error) {
	key := scheduleKey(homestayID, iv)

	if schedule, ok := c.load(ctx, key); ok {
		return schedule, nil
	}

	schedule, err := c.next.ScheduleFor(ctx, homestayID, iv)
	if err != nil {
		return pricing.RateSchedule{}, err
	}

	c.store(ctx, key, schedule)
	return schedule, nil
}

func (c *RateScheduleCache) load(ctx context.Context, key string) (pricing.RateSchedule, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("rate schedule cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return pricing.RateSchedule{}, false
	}

	var schedule pricing.RateSchedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		c.logger.Warn("discarding unreadable rate schedule cache entry", slog.String("key", key), slog.Any("error", err))
		return pricing.RateSchedule{}, false
	}
	return schedule, true
}

func (c *RateScheduleCache) store(ctx context.Context, key string, schedule pricing.RateSchedule) {
	data, err := json.Marshal(schedule)
	if err != nil {
		c.logger.Warn("rate schedule not cacheable", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("rate schedule cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
