package coupon

import (
	"context"
	"errors"
	"fmt"

	"homestay-pricing/internal/domain/money"
)

var (
	ErrInvalidCoupon      = errors.New("coupon: invalid code")
	ErrServiceUnavailable = errors.New("coupon: validation service unavailable")
)

// RejectedError carries the promotion service's reason verbatim.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return ErrInvalidCoupon.Error()
	}
	return e.Reason
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrInvalidCoupon
}

type Request struct {
	Code       Code
	Subtotal   money.VND
	HomestayID int64
	UserID     *int64
}

// Validation is the promotion service's answer.
type Validation struct {
	Valid          bool
	PromotionID    *int64
	Code           Code
	DiscountAmount money.VND
	Message        string
}

// Service is the remote promotion validator.
// Implementations return a *RejectedError for business rejections.
type Service interface {
	Validate(ctx context.Context, req Request) (Validation, error)
}

type Validator struct {
	service Service
}

func NewValidator(service Service) *Validator {
	return &Validator{service: service}
}

// Validate normalizes the code, asks the promotion service, and clamps the discount to the subtotal.
func (v *Validator) Validate(ctx context.Context, rawCode string, subtotal money.VND, homestayID int64, userID *int64) (Validation, error) {
	code, err := NewCode(rawCode)
	if err != nil {
		return Validation{}, err
	}

	res, err := v.service.Validate(ctx, Request{
		Code:       code,
		Subtotal:   subtotal,
		HomestayID: homestayID,
		UserID:     userID,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCoupon) {
			return Validation{}, err
		}
		return Validation{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	if !res.Valid {
		return Validation{}, &RejectedError{Reason: res.Message}
	}

	res.Code = code
	res.DiscountAmount = ClampDiscount(res.DiscountAmount, subtotal)
	return res, nil
}

// Applied is a validated coupon held in the pricing context.
type Applied struct {
	Code           Code      `json:"code"`
	PromotionID    *int64    `json:"promotionId,omitempty"`
	DiscountAmount money.VND `json:"discountAmount"`
	Message        string    `json:"message"`
	Basis          Basis     `json:"basis"`
}

func Apply(v Validation, basis Basis) Applied {
	return Applied{
		Code:           v.Code,
		PromotionID:    v.PromotionID,
		DiscountAmount: ClampDiscount(v.DiscountAmount, basis.Subtotal),
		Message:        v.Message,
		Basis:          basis,
	}
}

// IsStaleFor reports whether the coupon must be re-validated before use with current.
func (a Applied) IsStaleFor(current Basis) bool {
	return !a.Basis.Matches(current)
}
