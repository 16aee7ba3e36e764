package pricing

import (
	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"

	"github.com/shopspring/decimal"
)

var DefaultServiceFeeRate = decimal.RequireFromString("0.10")

type Breakdown struct {
	Nights            int       `json:"nights"`
	BasePriceTotal    money.VND `json:"basePriceTotal"`
	DynamicPriceTotal money.VND `json:"dynamicPriceTotal"`
	ServiceFee        money.VND `json:"serviceFee"`
	Subtotal          money.VND `json:"subtotal"`
	DiscountAmount    money.VND `json:"discountAmount"`
	ComboDiscount     money.VND `json:"comboDiscount"`
	Total             money.VND `json:"total"`
}

// Aggregate adds the service fee to the dynamic total first and subtracts
// discounts afterwards. The total is floored at zero. Amounts are held in
// [0, money.MaxAmount], so the result never wraps whatever the input.
func Aggregate(dyn DynamicPriceResult, serviceFeeRate decimal.Decimal, applied *coupon.Applied, selected *combo.Package) Breakdown {
	if serviceFeeRate.IsNegative() {
		serviceFeeRate = decimal.Zero
	}

	dynamicTotal := saturate(dyn.TotalPrice, nil)
	serviceFee := saturate(dynamicTotal.Times(serviceFeeRate))
	subtotal := saturate(dynamicTotal.Plus(serviceFee))

	comboDiscount := money.Zero
	if selected != nil {
		comboDiscount = saturate(selected.Discount(), nil)
	}

	discount := money.Zero
	if applied != nil {
		discount = coupon.ClampDiscount(applied.DiscountAmount, subtotal)
	}

	return Breakdown{
		Nights:            dyn.Nights,
		BasePriceTotal:    saturate(dyn.BasePriceTotal()),
		DynamicPriceTotal: dynamicTotal,
		ServiceFee:        serviceFee,
		Subtotal:          subtotal,
		DiscountAmount:    discount,
		ComboDiscount:     comboDiscount,
		Total:             money.Max(money.Zero, subtotal-discount-comboDiscount),
	}
}

func saturate(v money.VND, err error) money.VND {
	if err != nil {
		return money.MaxAmount
	}
	return v.Clamp(money.Zero, money.MaxAmount)
}
