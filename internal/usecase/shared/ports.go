package shared

import (
	"context"
	"time"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"

	"github.com/shopspring/decimal"
)

type HomestayCatalog interface {
	PricePerNight(ctx context.Context, homestayID int64) (money.VND, error)
}

type ComboCatalog interface {
	List(ctx context.Context, filter combo.Filter, at time.Time) ([]combo.Package, error)
	FindByID(ctx context.Context, id int64) (combo.Package, error)
}

type PriceCalculator interface {
	ComputeNightlyBreakdown(ctx context.Context, homestayID int64, iv stay.Interval, basePrice money.VND) (pricing.DynamicPriceResult, error)
}

type CouponChecker interface {
	Validate(ctx context.Context, rawCode string, subtotal money.VND, homestayID int64, userID *int64) (coupon.Validation, error)
}

// PricingPolicy carries the configured fee rate and stay length bounds.
type PricingPolicy struct {
	ServiceFeeRate decimal.Decimal
	MinStay        int
	MaxStay        int
}

func (p PricingPolicy) StayLimits() stay.Limits {
	return stay.Limits{MinNights: p.MinStay, MaxNights: p.MaxStay}
}
