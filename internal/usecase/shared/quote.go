package shared

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/pkg/clock"
	"homestay-pricing/internal/pkg/errs"
)

const (
	WarningComboCatalogUnavailable = "combo offers are temporarily unavailable"
	WarningCouponUnavailable       = "coupon could not be checked right now, discount not applied"
)

type CouponStatus string

const (
	CouponNone        CouponStatus = ""
	CouponApplied     CouponStatus = "applied"
	CouponRejected    CouponStatus = "rejected"
	CouponUnavailable CouponStatus = "unavailable"
)

type QuoteInput struct {
	HomestayID int64
	CheckIn    string
	CheckOut   string
	Guests     int
	// BasePrice overrides the catalog nightly rate when set.
	BasePrice  *money.VND
	CouponCode string
	ComboID    *int64
	UserID     *int64
}

type Quote struct {
	HomestayID     int64
	BasePrice      money.VND
	Guests         int
	Interval       stay.Interval
	Dynamic        pricing.DynamicPriceResult
	EligibleCombos []combo.Package
	SelectedCombo  *combo.Package
	Coupon         *coupon.Applied
	CouponStatus   CouponStatus
	CouponMessage  string
	// CouponError is set when CouponStatus is rejected or unavailable.
	CouponError error
	Breakdown   pricing.Breakdown
	Warnings    []string
}

// Quoter prices a stay in one pass by replaying the inputs through pricing.Reduce,
// so stateless quotes follow the same rules as pricing sessions.
type Quoter struct {
	homestays  HomestayCatalog
	combos     ComboCatalog
	calculator PriceCalculator
	coupons    CouponChecker
	policy     PricingPolicy
	clock      clock.Clock
	logger     *slog.Logger
}

func NewQuoter(
	homestays HomestayCatalog,
	combos ComboCatalog,
	calculator PriceCalculator,
	coupons CouponChecker,
	policy PricingPolicy,
	clk clock.Clock,
	logger *slog.Logger,
) *Quoter {
	return &Quoter{
		homestays:  homestays,
		combos:     combos,
		calculator: calculator,
		coupons:    coupons,
		policy:     policy,
		clock:      clk,
		logger:     logger,
	}
}

func (q *Quoter) Policy() PricingPolicy {
	return q.policy
}

func (q *Quoter) Quote(ctx context.Context, in QuoteInput) (*Quote, error) {
	if in.Guests < 1 {
		return nil, errs.Mark(pricing.ErrInvalidGuests, errs.ErrDomainValidation)
	}
	iv, err := q.policy.StayLimits().Create(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, MapDomainError(err)
	}

	base, err := q.BasePrice(ctx, in.HomestayID, in.BasePrice)
	if err != nil {
		return nil, err
	}

	var warnings []string
	combos, err := q.LoadCombos(ctx, in.HomestayID)
	if err != nil {
		if in.ComboID != nil {
			return nil, MapDomainError(err)
		}
		warnings = append(warnings, WarningComboCatalogUnavailable)
	}

	pc := pricing.NewContext("", in.HomestayID, base, in.Guests, q.policy.StayLimits(), q.policy.ServiceFeeRate)
	if pc, err = pricing.Reduce(pc, pricing.CombosLoaded{Combos: combos}); err != nil {
		return nil, err
	}
	if pc, err = pricing.Reduce(pc, pricing.DatesChanged{CheckIn: in.CheckIn, CheckOut: in.CheckOut}); err != nil {
		return nil, err
	}

	dyn, err := q.calculator.ComputeNightlyBreakdown(ctx, in.HomestayID, iv, base)
	if err != nil {
		return nil, MapDomainError(err)
	}
	if pc, err = pricing.Reduce(pc, pricing.PriceResolved{PriceRevision: pc.PriceRevision, Result: dyn}); err != nil {
		return nil, err
	}
	warnings = append(warnings, dyn.Warnings...)

	if in.ComboID != nil {
		if pc, err = pricing.Reduce(pc, pricing.ComboSelected{ComboID: *in.ComboID}); err != nil {
			return nil, q.ComboSelectionError(ctx, *in.ComboID, err)
		}
	}

	quote := &Quote{HomestayID: in.HomestayID, BasePrice: base, Guests: in.Guests}
	if in.CouponCode != "" {
		pc = q.applyCoupon(ctx, pc, in, quote)
		if quote.CouponStatus == CouponUnavailable {
			warnings = append(warnings, WarningCouponUnavailable)
		}
	}

	quote.Interval = iv
	quote.Dynamic = *pc.Dynamic
	quote.EligibleCombos = pc.EligibleCombos()
	quote.SelectedCombo = pc.SelectedCombo
	quote.Coupon = pc.Coupon
	quote.Breakdown = *pc.Breakdown
	quote.Warnings = warnings
	return quote, nil
}

func (q *Quoter) applyCoupon(ctx context.Context, pc pricing.Context, in QuoteInput, quote *Quote) pricing.Context {
	basis, err := pc.CouponBasis()
	if err != nil {
		return pc
	}

	v, err := q.coupons.Validate(ctx, in.CouponCode, basis.Subtotal, in.HomestayID, in.UserID)
	if err != nil {
		quote.CouponError = MapDomainError(err)
		var rejected *coupon.RejectedError
		switch {
		case errors.As(err, &rejected):
			quote.CouponStatus = CouponRejected
			quote.CouponMessage = rejected.Reason
		case errors.Is(err, coupon.ErrServiceUnavailable):
			quote.CouponStatus = CouponUnavailable
			q.logger.WarnContext(ctx, "coupon service unavailable",
				slog.Int64("homestay_id", in.HomestayID), slog.Any("error", err))
		default:
			quote.CouponStatus = CouponRejected
			quote.CouponMessage = err.Error()
		}
		return pc
	}

	next, err := pricing.Reduce(pc, pricing.CouponApplied{Revision: pc.Revision, Validation: v})
	if err != nil {
		quote.CouponStatus = CouponRejected
		quote.CouponError = MapDomainError(err)
		quote.CouponMessage = err.Error()
		return pc
	}
	quote.CouponStatus = CouponApplied
	quote.CouponMessage = v.Message
	return next
}

// BasePrice returns override when set and the catalog nightly rate otherwise.
func (q *Quoter) BasePrice(ctx context.Context, homestayID int64, override *money.VND) (money.VND, error) {
	if override != nil {
		if err := pricing.CheckBasePrice(*override); err != nil {
			return 0, errs.Mark(err, errs.ErrDomainValidation)
		}
		return *override, nil
	}
	price, err := q.homestays.PricePerNight(ctx, homestayID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, errs.ErrHomestayNotFound)
		}
		if infra.IsKind(err, infra.KindUpstreamRejected) {
			return 0, errs.Mark(err, errs.ErrUpstreamUnavailable)
		}
		return 0, MapDomainError(err)
	}
	if err := pricing.CheckBasePrice(price); err != nil {
		q.logger.WarnContext(ctx, "catalog nightly rate out of range",
			slog.Int64("homestay_id", homestayID), slog.Int64("price", price.Int64()))
		return 0, errs.Mark(errs.Wrapf(err, "catalog rate for homestay %d", homestayID), errs.ErrUpstreamUnavailable)
	}
	return price, nil
}

// LoadCombos lists the combos currently offered for the homestay.
func (q *Quoter) LoadCombos(ctx context.Context, homestayID int64) ([]combo.Package, error) {
	combos, err := q.combos.List(ctx, combo.Filter{HomestayID: &homestayID}, q.clock.Now())
	if err != nil {
		q.logger.WarnContext(ctx, "combo catalog unavailable",
			slog.Int64("homestay_id", homestayID), slog.Any("error", err))
		return nil, err
	}
	return combos, nil
}

// ComboSelectionError tells an unknown combo apart from one that exists but
// is not offered here or does not fit the stay.
func (q *Quoter) ComboSelectionError(ctx context.Context, comboID int64, err error) error {
	if !errors.Is(err, pricing.ErrComboNotOffered) {
		return MapDomainError(err)
	}
	if _, findErr := q.combos.FindByID(ctx, comboID); findErr != nil {
		if infra.IsKind(findErr, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrComboNotFound)
		}
		return MapDomainError(findErr)
	}
	return errs.Mark(err, errs.ErrComboIneligible)
}

func (q *Quoter) Now() time.Time {
	return q.clock.Now()
}
