package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"homestay-pricing/internal/domain/availability"

	"github.com/redis/go-redis/v9"
)

type CalendarSource interface {
	QuickAvailability(ctx context.Context, homestayID int64, month availability.Month) (availability.Calendar, error)
}

// CalendarCache keeps quick-availability months for a short TTL.
type CalendarCache struct {
	next   CalendarSource
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCalendarCache(next CalendarSource, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CalendarCache {
	return &CalendarCache{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *CalendarCache) QuickAvailability(ctx context.Context, homestayID int64, month availability.Month) (availability.Calendar, error) {
	key := calendarKey(homestayID, month)

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cal availability.Calendar
		if jsonErr := json.Unmarshal(data, &cal); jsonErr == nil {
			return cal, nil
		}
		c.logger.Warn("discarding unreadable calendar cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("calendar cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	cal, err := c.next.QuickAvailability(ctx, homestayID, month)
	if err != nil {
		return availability.Calendar{}, err
	}

	if payload, jsonErr := json.Marshal(cal); jsonErr == nil {
		if setErr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.logger.Warn("calendar cache write failed", slog.String("key", key), slog.Any("error", setErr))
		}
	}
	return cal, nil
}
