package queries

import (
	"context"

	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/pkg/errs"
	"homestay-pricing/internal/usecase/shared"
)

type CouponCheckInput struct {
	Code       string
	Subtotal   money.VND
	HomestayID int64
	UserID     *int64
}

type CouponQueries interface {
	Validate(ctx context.Context, in CouponCheckInput) (*coupon.Validation, error)
}

type couponQueriesImpl struct {
	checker shared.CouponChecker
}

func NewCouponQueries(checker shared.CouponChecker) CouponQueries {
	return &couponQueriesImpl{checker: checker}
}

// Validate checks a code against a subtotal the caller already knows. A rejected
// code is returned as an error carrying the promotion service's reason.
func (q *couponQueriesImpl) Validate(ctx context.Context, in CouponCheckInput) (*coupon.Validation, error) {
	if in.Subtotal.IsNegative() {
		return nil, errs.Mark(errs.New("subtotal cannot be negative"), errs.ErrDomainValidation)
	}
	v, err := q.checker.Validate(ctx, in.Code, in.Subtotal, in.HomestayID, in.UserID)
	if err != nil {
		return nil, shared.MapDomainError(err)
	}
	return &v, nil
}
