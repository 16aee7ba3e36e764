package components

import (
	"log/slog"

	"homestay-pricing/internal/infra/broker/kafka"
	"homestay-pricing/internal/infra/cache"
	"homestay-pricing/internal/infra/repository"
	"homestay-pricing/internal/infra/upstream"
	"homestay-pricing/internal/pkg/config"
	"homestay-pricing/internal/usecase/commands"
	"homestay-pricing/internal/usecase/queries"
	"homestay-pricing/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const bookingIdempotencyScope = "bookings"

var InfraModule = fx.Module("infra",
	fx.Provide(
		// Upstream homestay backend
		fx.Annotate(
			NewUpstreamClient,
			fx.As(new(shared.HomestayCatalog)),
			fx.As(new(commands.AvailabilitySource)),
			fx.As(new(commands.BookingGateway)),
			fx.As(new(queries.PaymentStatusSources)),
			fx.As(fx.Self()),
		),
		upstream.NewCouponService,
		// Redis-backed caches and stores
		NewRateScheduleCache,
		fx.Annotate(
			NewCalendarCache,
			fx.As(new(queries.CalendarSource)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
			fx.As(new(queries.SessionReader)),
		),
		fx.Annotate(
			NewIdempotencyStore,
			fx.As(new(commands.IdempotencyStore)),
		),
		// Booking events
		fx.Annotate(
			NewBookingEvents,
			fx.As(new(commands.BookingEventPublisher)),
		),
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger) *upstream.Client {
	return upstream.NewClient(cfg.Upstream, logger)
}

func NewRateScheduleCache(next *repository.RateRuleRepository, rdb *redis.Client, cfg config.Config, logger *slog.Logger) *cache.RateScheduleCache {
	return cache.NewRateScheduleCache(next, rdb, cfg.Pricing.RuleCacheTTL, logger)
}

func NewCalendarCache(next *upstream.Client, rdb *redis.Client, cfg config.Config, logger *slog.Logger) *cache.CalendarCache {
	return cache.NewCalendarCache(next, rdb, cfg.Pricing.CalendarCacheTTL, logger)
}

func NewSessionStore(rdb *redis.Client, cfg config.Config, logger *slog.Logger) *cache.SessionStore {
	return cache.NewSessionStore(rdb, cfg.Session.TTL, logger)
}

func NewIdempotencyStore(rdb *redis.Client, cfg config.Config, logger *slog.Logger) *cache.IdempotencyStore {
	return cache.NewIdempotencyStore(rdb, bookingIdempotencyScope, cfg.Session.IdempotencyTTL, logger)
}

func NewBookingEvents(publisher kafka.MessagePublisher, cfg config.Config, logger *slog.Logger) *kafka.BookingEvents {
	return kafka.NewBookingEvents(publisher, cfg.Kafka.BookingTopic, logger)
}
