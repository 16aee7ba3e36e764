package shared

import (
	"context"
	"errors"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/pkg/errs"
)

// MapDomainError marks domain and adapter failures with the use-case sentinel
// the transport layer understands. Unknown errors are returned as they are.
func MapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, stay.ErrInvalidDate),
		errors.Is(err, stay.ErrInvalidDateOrder),
		errors.Is(err, stay.ErrBelowMinimumStay),
		errors.Is(err, stay.ErrAboveMaximumStay):
		return errs.Mark(err, errs.ErrInvalidStay)
	case errors.Is(err, pricing.ErrNoDates):
		return errs.Mark(err, errs.ErrInvalidStay)
	case errors.Is(err, combo.ErrComboIneligible):
		return errs.Mark(err, errs.ErrComboIneligible)
	case errors.Is(err, coupon.ErrInvalidCoupon),
		errors.Is(err, coupon.ErrEmptyCode),
		errors.Is(err, coupon.ErrInvalidCouponCode):
		return errs.Mark(err, errs.ErrInvalidCoupon)
	case errors.Is(err, coupon.ErrServiceUnavailable):
		return errs.Mark(err, errs.ErrCouponServiceUnavailable)
	case errors.Is(err, pricing.ErrStaleResult):
		return errs.Mark(err, errs.ErrSessionConflict)
	case errors.Is(err, pricing.ErrPriceNotReady),
		errors.Is(err, pricing.ErrInvalidGuests),
		errors.Is(err, pricing.ErrNegativeBasePrice),
		errors.Is(err, pricing.ErrBasePriceTooLarge):
		return errs.Mark(err, errs.ErrDomainValidation)
	case infra.IsKind(err, infra.KindUpstreamFailure),
		infra.IsKind(err, infra.KindDBFailure),
		infra.IsKind(err, infra.KindCacheFailure):
		return errs.Mark(err, errs.ErrUpstreamUnavailable)
	default:
		return err
	}
}
