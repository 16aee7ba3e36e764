//go:build e2e

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"homestay-pricing/internal/domain/availability"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/infra/cache"
	"homestay-pricing/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type CacheSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	logger    *slog.Logger
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "cache-tests"},
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = c

	host, err := c.Host(ctx)
	s.Require().NoError(err)
	port, err := c.MappedPort(ctx, nat.Port("6379/tcp"))
	s.Require().NoError(err)

	s.rdb, err = cache.NewClient(ctx, config.RedisConfig{Addr: host + ":" + port.Port()})
	s.Require().NoError(err)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *CacheSuite) TearDownSuite() {
	if s.rdb != nil {
		_ = s.rdb.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *CacheSuite) SetupTest() {
	s.Require().NoError(s.rdb.FlushDB(context.Background()).Err())
}

type countingSource struct {
	calls    atomic.Int32
	schedule pricing.RateSchedule
	err      error
}

func (c *countingSource) ScheduleFor(ctx context.Context, homestayID int64, iv stay.Interval) (pricing.RateSchedule, error) {
	c.calls.Add(1)
	return c.schedule, c.err
}

func (s *CacheSuite) TestRateScheduleCache_ReadThrough() {
	ctx := context.Background()
	iv, err := stay.Create("2025-12-24", "2025-12-26", 1)
	s.Require().NoError(err)

	src := &countingSource{schedule: pricing.RateSchedule{
		Rules: []pricing.SeasonalRule{{
			ID:         1,
			Name:       "Christmas",
			StartDate:  iv.CheckIn(),
			EndDate:    iv.CheckOut(),
			Multiplier: decimal.RequireFromString("1.5"),
			Surcharge:  money.VND(100_000),
		}},
	}}
	c := cache.NewRateScheduleCache(src, s.rdb, time.Minute, s.logger)

	first, err := c.ScheduleFor(ctx, 7, iv)
	s.Require().NoError(err)
	second, err := c.ScheduleFor(ctx, 7, iv)
	s.Require().NoError(err)

	s.Equal(int32(1), src.calls.Load())
	s.Require().Len(second.Rules, 1)
	s.True(second.Rules[0].Multiplier.Equal(first.Rules[0].Multiplier))
	s.Equal("Christmas", second.Rules[0].Name)

	// different homestay is a different key
	_, err = c.ScheduleFor(ctx, 8, iv)
	s.Require().NoError(err)
	s.Equal(int32(2), src.calls.Load())
}

func (s *CacheSuite) TestRateScheduleCache_SourceErrorNotCached() {
	ctx := context.Background()
	iv, err := stay.Create("2025-12-24", "2025-12-26", 1)
	s.Require().NoError(err)

	src := &countingSource{err: errors.New("db down")}
	c := cache.NewRateScheduleCache(src, s.rdb, time.Minute, s.logger)

	_, err = c.ScheduleFor(ctx, 7, iv)
	s.Error(err)
	_, err = c.ScheduleFor(ctx, 7, iv)
	s.Error(err)
	s.Equal(int32(2), src.calls.Load())
}

type calendarFunc func(ctx context.Context, homestayID int64, m availability.Month) (availability.Calendar, error)

func (f calendarFunc) QuickAvailability(ctx context.Context, homestayID int64, m availability.Month) (availability.Calendar, error) {
	return f(ctx, homestayID, m)
}

func (s *CacheSuite) TestCalendarCache() {
	ctx := context.Background()
	var calls int
	src := calendarFunc(func(_ context.Context, homestayID int64, m availability.Month) (availability.Calendar, error) {
		calls++
		return availability.Calendar{
			HomestayID: homestayID,
			Month:      m,
			TotalRooms: 2,
			Days: []availability.Day{{
				Date:   time.Date(m.Year, m.Month, 3, 0, 0, 0, 0, time.UTC),
				Status: availability.StatusBooked,
				Color:  availability.StatusBooked.Color(),
			}},
		}, nil
	})
	c := cache.NewCalendarCache(src, s.rdb, time.Minute, s.logger)
	month, err := availability.NewMonth(2025, 12)
	s.Require().NoError(err)

	_, err = c.QuickAvailability(ctx, 7, month)
	s.Require().NoError(err)
	cal, err := c.QuickAvailability(ctx, 7, month)
	s.Require().NoError(err)

	s.Equal(1, calls)
	s.Equal(month, cal.Month)
	s.Require().Len(cal.Days, 1)
	s.Equal(availability.StatusBooked, cal.Days[0].Status)
}

func (s *CacheSuite) TestSessionStore_CreateGetUpdate() {
	ctx := context.Background()
	store := cache.NewSessionStore(s.rdb, time.Minute, s.logger)
	pc := pricing.NewContext("sess-1", 7, money.VND(1_000_000), 2, stay.DefaultLimits(), pricing.DefaultServiceFeeRate)

	s.Require().NoError(store.Create(ctx, pc))
	err := store.Create(ctx, pc)
	s.True(infra.IsKind(err, infra.KindConflict))

	got, err := store.Get(ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal(pc.Revision, got.Revision)
	s.Equal(pricing.StateNoDates, got.State)

	updated, err := store.Update(ctx, "sess-1", func(cur pricing.Context) (pricing.Context, error) {
		return pricing.Reduce(cur, pricing.DatesChanged{CheckIn: "2025-12-24", CheckOut: "2025-12-27"})
	})
	s.Require().NoError(err)
	s.Equal(pc.Revision+1, updated.Revision)
	s.Require().NotNil(updated.Interval)
	s.Equal(3, updated.Interval.Nights())

	reloaded, err := store.Get(ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal(updated.Revision, reloaded.Revision)
	s.Equal(updated.PriceRevision, reloaded.PriceRevision)
}

func (s *CacheSuite) TestSessionStore_NotFound() {
	store := cache.NewSessionStore(s.rdb, time.Minute, s.logger)

	_, err := store.Get(context.Background(), "missing")
	s.True(infra.IsKind(err, infra.KindNotFound))

	_, err = store.Update(context.Background(), "missing", func(cur pricing.Context) (pricing.Context, error) {
		s.Fail("fn must not run for a missing session")
		return cur, nil
	})
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *CacheSuite) TestSessionStore_RejectedTransitionLeavesStateUntouched() {
	ctx := context.Background()
	store := cache.NewSessionStore(s.rdb, time.Minute, s.logger)
	pc := pricing.NewContext("sess-2", 7, money.VND(1_000_000), 2, stay.DefaultLimits(), pricing.DefaultServiceFeeRate)
	s.Require().NoError(store.Create(ctx, pc))

	_, err := store.Update(ctx, "sess-2", func(cur pricing.Context) (pricing.Context, error) {
		return pricing.Reduce(cur, pricing.PriceResolved{PriceRevision: cur.PriceRevision + 5})
	})
	s.ErrorIs(err, pricing.ErrStaleResult)

	got, err := store.Get(ctx, "sess-2")
	s.Require().NoError(err)
	s.Equal(pc.Revision, got.Revision)
}

func (s *CacheSuite) TestSessionStore_ConcurrentWritersNeverLoseRevisions() {
	ctx := context.Background()
	store := cache.NewSessionStore(s.rdb, time.Minute, s.logger)
	pc := pricing.NewContext("sess-3", 7, money.VND(1_000_000), 2, stay.DefaultLimits(), pricing.DefaultServiceFeeRate)
	s.Require().NoError(store.Create(ctx, pc))

	const writers = 4
	var wg sync.WaitGroup
	var succeeded atomic.Int32
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(guests int) {
			defer wg.Done()
			_, err := store.Update(ctx, "sess-3", func(cur pricing.Context) (pricing.Context, error) {
				return pricing.Reduce(cur, pricing.GuestsChanged{Guests: guests})
			})
			if err == nil {
				succeeded.Add(1)
				return
			}
			assert.True(s.T(), infra.IsKind(err, infra.KindConflict), "unexpected error: %v", err)
		}(i + 1)
	}
	wg.Wait()

	got, err := store.Get(ctx, "sess-3")
	s.Require().NoError(err)
	s.Equal(pc.Revision+uint64(succeeded.Load()), got.Revision)
}

func (s *CacheSuite) TestIdempotencyStore() {
	ctx := context.Background()
	store := cache.NewIdempotencyStore(s.rdb, "bookings", time.Minute, s.logger)

	owned, err := store.TryInsert(ctx, "key-1", "hash-a")
	s.Require().NoError(err)
	s.True(owned)

	owned, err = store.TryInsert(ctx, "key-1", "hash-a")
	s.Require().NoError(err)
	s.False(owned)

	rec, err := store.Get(ctx, "key-1")
	s.Require().NoError(err)
	s.Equal(cache.IdempotencyProcessing, rec.Status)
	s.Equal("hash-a", rec.RequestHash)

	s.Require().NoError(store.Complete(ctx, "key-1", "hash-a", map[string]string{"bookingCode": "BK-1"}))
	rec, err = store.Get(ctx, "key-1")
	s.Require().NoError(err)
	s.Equal(cache.IdempotencyCompleted, rec.Status)
	s.JSONEq(`{"bookingCode":"BK-1"}`, string(rec.Result))

	s.Require().NoError(store.Release(ctx, "key-1"))
	_, err = store.Get(ctx, "key-1")
	s.True(infra.IsKind(err, infra.KindNotFound))

	require.NoError(s.T(), store.Release(ctx, "never-inserted"))
}
