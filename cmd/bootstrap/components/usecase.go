package components

import (
	"log/slog"

	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/infra/cache"
	"homestay-pricing/internal/infra/upstream"
	"homestay-pricing/internal/pkg/clock"
	"homestay-pricing/internal/pkg/config"
	"homestay-pricing/internal/usecase"
	"homestay-pricing/internal/usecase/commands"
	"homestay-pricing/internal/usecase/queries"
	"homestay-pricing/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewPricingPolicy,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(shared.PriceCalculator)),
	),
	fx.Annotate(
		NewCouponValidator,
		fx.As(new(shared.CouponChecker)),
	),
	shared.NewQuoter,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSessionCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewAvailabilityQueries,
		queries.NewCouponQueries,
		queries.NewSessionQueries,
		NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// vietnamOffset is used only when the image has no tzdata
const vietnamOffset = 7 * 60 * 60

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClock(clock.LoadLocation(cfg.Pricing.TimeZone, vietnamOffset))
}

func NewPricingPolicy(cfg config.Config) shared.PricingPolicy {
	return shared.PricingPolicy{
		ServiceFeeRate: decimal.NewFromFloat(cfg.Pricing.ServiceFeeRate),
		MinStay:        cfg.Pricing.MinStayNights,
		MaxStay:        cfg.Pricing.MaxStayNights,
	}
}

func NewPriceCalculator(rates *cache.RateScheduleCache, cfg config.Config) *pricing.DynamicPriceCalculator {
	return pricing.NewDynamicPriceCalculator(rates, pricing.CalculatorOptions{
		WeekendMultiplier: decimal.NewFromFloat(cfg.Pricing.WeekendMultiplier),
		Timeout:           cfg.Pricing.RateSourceTimeout,
	})
}

func NewCouponValidator(service *upstream.CouponService) *coupon.Validator {
	return coupon.NewValidator(service)
}

func NewPaymentQueries(sources queries.PaymentStatusSources, cfg config.Config, logger *slog.Logger) queries.PaymentQueries {
	return queries.NewPaymentQueries(sources, cfg.Payment.PollInterval, cfg.Payment.PollTimeout, logger)
}
