//go:build unit || e2e

package builder

import (
	"time"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	reqdto "homestay-pricing/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type StayBuilder struct {
	HomestayID int64
	CheckIn    string
	CheckOut   string
	Guests     int
	BasePrice  money.VND
	CouponCode string
	ComboID    *int64
}

// NewStayBuilder defaults to a Monday to Wednesday stay, so no weekend uplift applies.
func NewStayBuilder() *StayBuilder {
	return &StayBuilder{
		HomestayID: 42,
		CheckIn:    "2026-03-09",
		CheckOut:   "2026-03-11",
		Guests:     2,
		BasePrice:  500_000,
	}
}

func (b *StayBuilder) With(mutate func(*StayBuilder)) *StayBuilder {
	mutate(b)
	return b
}

func (b *StayBuilder) Interval() stay.Interval {
	iv, err := stay.Create(b.CheckIn, b.CheckOut, 1)
	if err != nil {
		panic(err)
	}
	return iv
}

func (b *StayBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	base := b.BasePrice.Int64()
	return reqdto.QuoteRequest{
		HomestayID: b.HomestayID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		BasePrice:  &base,
		CouponCode: b.CouponCode,
		ComboID:    b.ComboID,
	}
}

func (b *StayBuilder) BuildBookingRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HomestayID: b.HomestayID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		CouponCode: b.CouponCode,
		ComboID:    b.ComboID,
		GuestInfo: reqdto.GuestInfoRequest{
			FullName: "Nguyen Van A",
			Email:    "guest@example.com",
			Phone:    "0901234567",
		},
		PaymentMethod: "vnpay",
	}
}

// BuildDynamic prices every night at the base rate.
func (b *StayBuilder) BuildDynamic() pricing.DynamicPriceResult {
	iv := b.Interval()
	nights := make([]pricing.NightlyPriceEntry, 0, iv.Nights())
	for _, d := range iv.Dates() {
		nights = append(nights, pricing.NightlyPriceEntry{
			Date:       d,
			BasePrice:  b.BasePrice,
			Multiplier: decimal.NewFromInt(1),
			FinalPrice: b.BasePrice,
			Reasons:    []string{},
		})
	}
	total := b.BasePrice * money.VND(iv.Nights())
	return pricing.DynamicPriceResult{
		HomestayID:   b.HomestayID,
		TotalPrice:   total,
		Nights:       iv.Nights(),
		AveragePrice: b.BasePrice,
		BasePrice:    b.BasePrice,
		Breakdown:    nights,
	}
}

type ComboBuilder struct {
	pkg combo.Package
}

func NewComboBuilder() *ComboBuilder {
	return &ComboBuilder{pkg: combo.Package{
		ID:                7,
		Name:              "Breakfast weekend",
		MinNights:         2,
		IncludesBreakfast: true,
		OriginalPrice:     1_000_000,
		ComboPrice:        800_000,
		Active:            true,
	}}
}

func (b *ComboBuilder) With(mutate func(*combo.Package)) *ComboBuilder {
	mutate(&b.pkg)
	return b
}

func (b *ComboBuilder) Build() combo.Package {
	return b.pkg
}

func (b *ComboBuilder) ValidBetween(from, until time.Time) *ComboBuilder {
	b.pkg.ValidFrom = &from
	b.pkg.ValidUntil = &until
	return b
}
