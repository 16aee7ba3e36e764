//go:build unit

package coupon_test

import (
	"context"
	"errors"
	"testing"

	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFunc func(ctx context.Context, req coupon.Request) (coupon.Validation, error)

func (f serviceFunc) Validate(ctx context.Context, req coupon.Request) (coupon.Validation, error) {
	return f(ctx, req)
}

func TestNewCode(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		want  coupon.Code
		errIs error
	}{
		{name: "lower case is normalized", raw: "summer20", want: "SUMMER20"},
		{name: "surrounding spaces trimmed", raw: "  Summer20 ", want: "SUMMER20"},
		{name: "empty", raw: "", errIs: coupon.ErrEmptyCode},
		{name: "whitespace only", raw: "   ", errIs: coupon.ErrEmptyCode},
		{name: "too long", raw: "ABCDEFGHIJABCDEFGHIJABCDEFGHIJABCDEFGHIJABCDEFGHIJX", errIs: coupon.ErrInvalidCouponCode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.raw)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code)
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("codes are normalized before the call", func(t *testing.T) {
		var seen []coupon.Code
		v := coupon.NewValidator(serviceFunc(func(_ context.Context, req coupon.Request) (coupon.Validation, error) {
			seen = append(seen, req.Code)
			return coupon.Validation{Valid: true, DiscountAmount: 300_000, Message: "ok"}, nil
		}))

		lower, err := v.Validate(ctx, "summer20", 3_300_000, 7, nil)
		require.NoError(t, err)
		upper, err := v.Validate(ctx, "SUMMER20", 3_300_000, 7, nil)
		require.NoError(t, err)

		assert.Equal(t, []coupon.Code{"SUMMER20", "SUMMER20"}, seen)
		assert.Equal(t, upper, lower)
	})

	t.Run("empty code never reaches the service", func(t *testing.T) {
		called := false
		v := coupon.NewValidator(serviceFunc(func(context.Context, coupon.Request) (coupon.Validation, error) {
			called = true
			return coupon.Validation{}, nil
		}))

		_, err := v.Validate(ctx, " ", 1_000_000, 7, nil)
		assert.ErrorIs(t, err, coupon.ErrEmptyCode)
		assert.False(t, called)
	})

	t.Run("rejection reason is surfaced verbatim", func(t *testing.T) {
		v := coupon.NewValidator(serviceFunc(func(context.Context, coupon.Request) (coupon.Validation, error) {
			return coupon.Validation{}, &coupon.RejectedError{Reason: "Đơn hàng tối thiểu 2.000.000đ"}
		}))

		_, err := v.Validate(ctx, "BIG", 1_000_000, 7, nil)
		require.ErrorIs(t, err, coupon.ErrInvalidCoupon)

		var rejected *coupon.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "Đơn hàng tối thiểu 2.000.000đ", rejected.Reason)
	})

	t.Run("invalid answer becomes a rejection", func(t *testing.T) {
		v := coupon.NewValidator(serviceFunc(func(context.Context, coupon.Request) (coupon.Validation, error) {
			return coupon.Validation{Valid: false, Message: "Mã giảm giá đã hết hạn"}, nil
		}))

		_, err := v.Validate(ctx, "OLD", 1_000_000, 7, nil)
		assert.ErrorIs(t, err, coupon.ErrInvalidCoupon)
		assert.EqualError(t, err, "Mã giảm giá đã hết hạn")
	})

	t.Run("transport failure is reported as unavailable", func(t *testing.T) {
		v := coupon.NewValidator(serviceFunc(func(context.Context, coupon.Request) (coupon.Validation, error) {
			return coupon.Validation{}, errors.New("connection refused")
		}))

		_, err := v.Validate(ctx, "SUMMER20", 1_000_000, 7, nil)
		assert.ErrorIs(t, err, coupon.ErrServiceUnavailable)
		assert.NotErrorIs(t, err, coupon.ErrInvalidCoupon)
	})

	t.Run("discount is clamped to the subtotal", func(t *testing.T) {
		testCases := []struct {
			name     string
			discount money.VND
			want     money.VND
		}{
			{name: "over large", discount: 5_000_000, want: 1_000_000},
			{name: "negative", discount: -10, want: 0},
			{name: "in range", discount: 250_000, want: 250_000},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				v := coupon.NewValidator(serviceFunc(func(context.Context, coupon.Request) (coupon.Validation, error) {
					return coupon.Validation{Valid: true, DiscountAmount: tc.discount}, nil
				}))

				res, err := v.Validate(ctx, "X1", 1_000_000, 7, nil)
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.DiscountAmount)
			})
		}
	})
}

func TestApplied_IsStaleFor(t *testing.T) {
	comboID := int64(3)
	otherCombo := int64(4)
	applied := coupon.Apply(
		coupon.Validation{Valid: true, Code: "SUMMER20", DiscountAmount: 300_000},
		coupon.Basis{Subtotal: 3_300_000, Guests: 2},
	)

	assert.False(t, applied.IsStaleFor(coupon.Basis{Subtotal: 3_300_000, Guests: 2}))
	assert.False(t, applied.IsStaleFor(coupon.Basis{Subtotal: 3_300_001, Guests: 2}))
	assert.True(t, applied.IsStaleFor(coupon.Basis{Subtotal: 3_600_000, Guests: 2}))
	assert.True(t, applied.IsStaleFor(coupon.Basis{Subtotal: 3_300_000, Guests: 3}))
	assert.True(t, applied.IsStaleFor(coupon.Basis{Subtotal: 3_300_000, Guests: 2, ComboID: &comboID}))

	withCombo := coupon.Apply(coupon.Validation{Valid: true}, coupon.Basis{Subtotal: 1, Guests: 1, ComboID: &comboID})
	assert.False(t, withCombo.IsStaleFor(coupon.Basis{Subtotal: 1, Guests: 1, ComboID: &comboID}))
	assert.True(t, withCombo.IsStaleFor(coupon.Basis{Subtotal: 1, Guests: 1, ComboID: &otherCombo}))
}

func TestApplied_IsStaleFor_DateChange(t *testing.T) {
	applied := coupon.Apply(coupon.Validation{Valid: true}, coupon.Basis{Subtotal: 10, Guests: 1, Stay: "[2024-06-01,2024-06-04)"})

	assert.False(t, applied.IsStaleFor(coupon.Basis{Subtotal: 10, Guests: 1, Stay: "[2024-06-01,2024-06-04)"}))
	assert.True(t, applied.IsStaleFor(coupon.Basis{Subtotal: 10, Guests: 1, Stay: "[2024-06-02,2024-06-05)"}))
}
