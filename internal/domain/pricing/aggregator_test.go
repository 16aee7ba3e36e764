//go:build unit

package pricing_test

import (
	"testing"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func flatResult(base money.VND, nights int) pricing.DynamicPriceResult {
	return pricing.DynamicPriceResult{
		TotalPrice:   base * money.VND(nights),
		Nights:       nights,
		AveragePrice: base,
		BasePrice:    base,
	}
}

func TestAggregate(t *testing.T) {
	dyn := flatResult(1_000_000, 3)

	t.Run("service fee is added before discounts", func(t *testing.T) {
		got := pricing.Aggregate(dyn, pricing.DefaultServiceFeeRate, nil, nil)

		want := pricing.Breakdown{
			Nights:            3,
			BasePriceTotal:    3_000_000,
			DynamicPriceTotal: 3_000_000,
			ServiceFee:        300_000,
			Subtotal:          3_300_000,
			Total:             3_300_000,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("coupon then combo", func(t *testing.T) {
		applied := &coupon.Applied{Code: "SUMMER20", DiscountAmount: 300_000}
		withCoupon := pricing.Aggregate(dyn, pricing.DefaultServiceFeeRate, applied, nil)
		assert.Equal(t, money.VND(3_000_000), withCoupon.Total)

		pkg := &combo.Package{ID: 1, Name: "combo", MinNights: 2, OriginalPrice: 3_300_000, ComboPrice: 2_900_000}
		withBoth := pricing.Aggregate(dyn, pricing.DefaultServiceFeeRate, applied, pkg)

		assert.Equal(t, money.VND(3_300_000), withBoth.Subtotal)
		assert.Equal(t, money.VND(300_000), withBoth.DiscountAmount)
		assert.Equal(t, money.VND(400_000), withBoth.ComboDiscount)
		assert.Equal(t, money.VND(2_600_000), withBoth.Total)
	})

	t.Run("total never goes negative", func(t *testing.T) {
		small := pricing.DynamicPriceResult{TotalPrice: 909_091, Nights: 1, BasePrice: 909_091}
		applied := &coupon.Applied{DiscountAmount: 800_000}
		pkg := &combo.Package{OriginalPrice: 600_000, ComboPrice: 100_000}

		got := pricing.Aggregate(small, pricing.DefaultServiceFeeRate, applied, pkg)

		assert.Equal(t, money.VND(1_000_000), got.Subtotal)
		assert.Equal(t, money.Zero, got.Total)
	})

	t.Run("oversized or negative coupon discounts are clamped", func(t *testing.T) {
		over := pricing.Aggregate(dyn, pricing.DefaultServiceFeeRate, &coupon.Applied{DiscountAmount: 9_000_000}, nil)
		assert.Equal(t, money.VND(3_300_000), over.DiscountAmount)
		assert.Equal(t, money.Zero, over.Total)

		negative := pricing.Aggregate(dyn, pricing.DefaultServiceFeeRate, &coupon.Applied{DiscountAmount: -5}, nil)
		assert.Equal(t, money.Zero, negative.DiscountAmount)
		assert.Equal(t, money.VND(3_300_000), negative.Total)
	})

	t.Run("service fee rounds to whole dong", func(t *testing.T) {
		got := pricing.Aggregate(flatResult(333_335, 1), pricing.DefaultServiceFeeRate, nil, nil)
		// 33333.5 rounds half away from zero
		assert.Equal(t, money.VND(33_334), got.ServiceFee)
	})

	t.Run("out of range inputs saturate instead of wrapping", func(t *testing.T) {
		huge := pricing.DynamicPriceResult{TotalPrice: 8e18, Nights: 2, BasePrice: 5e18}
		pkg := &combo.Package{OriginalPrice: 9e18, ComboPrice: 0}

		got := pricing.Aggregate(huge, pricing.DefaultServiceFeeRate, &coupon.Applied{DiscountAmount: 1}, pkg)

		for name, v := range map[string]money.VND{
			"basePriceTotal": got.BasePriceTotal,
			"dynamicTotal":   got.DynamicPriceTotal,
			"serviceFee":     got.ServiceFee,
			"subtotal":       got.Subtotal,
			"total":          got.Total,
		} {
			assert.False(t, v.IsNegative(), name)
			assert.True(t, v.InRange(), name)
		}
		assert.Equal(t, money.MaxAmount, got.Subtotal)
	})

	t.Run("aggregate is deterministic", func(t *testing.T) {
		applied := &coupon.Applied{DiscountAmount: 10_000}
		a := pricing.Aggregate(dyn, pricing.DefaultServiceFeeRate, applied, nil)
		b := pricing.Aggregate(dyn, pricing.DefaultServiceFeeRate, applied, nil)
		assert.Equal(t, a, b)
	})
}
