package response

import (
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/usecase/shared"
)

type BreakdownResponse struct {
	Nights            int    `json:"nights"`
	BasePriceTotal    Amount `json:"basePriceTotal"`
	DynamicPriceTotal Amount `json:"dynamicPriceTotal"`
	ServiceFee        Amount `json:"serviceFee"`
	Subtotal          Amount `json:"subtotal"`
	DiscountAmount    Amount `json:"discountAmount"`
	ComboDiscount     Amount `json:"comboDiscount"`
	Total             Amount `json:"total"`
}

func FromBreakdown(b pricing.Breakdown) *BreakdownResponse {
	return &BreakdownResponse{
		Nights:            b.Nights,
		BasePriceTotal:    NewAmount(b.BasePriceTotal),
		DynamicPriceTotal: NewAmount(b.DynamicPriceTotal),
		ServiceFee:        NewAmount(b.ServiceFee),
		Subtotal:          NewAmount(b.Subtotal),
		DiscountAmount:    NewAmount(b.DiscountAmount),
		ComboDiscount:     NewAmount(b.ComboDiscount),
		Total:             NewAmount(b.Total),
	}
}

type NightResponse struct {
	Date       string   `json:"date"`
	BasePrice  Amount   `json:"basePrice"`
	Multiplier string   `json:"multiplier"`
	Surcharge  Amount   `json:"surcharge"`
	FinalPrice Amount   `json:"finalPrice"`
	Reasons    []string `json:"reasons"`
}

type DynamicPriceResponse struct {
	HomestayID     int64           `json:"homestayId"`
	TotalPrice     Amount          `json:"totalPrice"`
	Nights         int             `json:"nights"`
	AveragePrice   Amount          `json:"averagePrice"`
	BasePrice      Amount          `json:"basePrice"`
	PriceBreakdown []NightResponse `json:"priceBreakdown"`
	Fallback       bool            `json:"fallback"`
	Warnings       []string        `json:"warnings,omitempty"`
}

func FromDynamicPrice(r pricing.DynamicPriceResult) *DynamicPriceResponse {
	nights := make([]NightResponse, len(r.Breakdown))
	for i, n := range r.Breakdown {
		reasons := n.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		nights[i] = NightResponse{
			Date:       n.Date.Format(stay.DateLayout),
			BasePrice:  NewAmount(n.BasePrice),
			Multiplier: n.Multiplier.String(),
			Surcharge:  NewAmount(n.Surcharge),
			FinalPrice: NewAmount(n.FinalPrice),
			Reasons:    reasons,
		}
	}
	return &DynamicPriceResponse{
		HomestayID:     r.HomestayID,
		TotalPrice:     NewAmount(r.TotalPrice),
		Nights:         r.Nights,
		AveragePrice:   NewAmount(r.AveragePrice),
		BasePrice:      NewAmount(r.BasePrice),
		PriceBreakdown: nights,
		Fallback:       r.Fallback,
		Warnings:       r.Warnings,
	}
}

type StayResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
}

func fromInterval(iv stay.Interval) *StayResponse {
	if iv.IsZero() {
		return nil
	}
	return &StayResponse{
		CheckIn:  iv.CheckIn().Format(stay.DateLayout),
		CheckOut: iv.CheckOut().Format(stay.DateLayout),
		Nights:   iv.Nights(),
	}
}

type QuoteCouponResponse struct {
	Code    string  `json:"code,omitempty"`
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Amount  *Amount `json:"discount,omitempty"`
}

type QuoteResponse struct {
	HomestayID     int64                 `json:"homestayId"`
	Guests         int                   `json:"guests"`
	Interval       *StayResponse         `json:"interval"`
	Dynamic        *DynamicPriceResponse `json:"dynamic"`
	EligibleCombos []ComboResponse       `json:"eligibleCombos"`
	SelectedCombo  *ComboResponse        `json:"selectedCombo,omitempty"`
	Coupon         *QuoteCouponResponse  `json:"coupon,omitempty"`
	Breakdown      *BreakdownResponse    `json:"breakdown"`
	CouponMessage  string                `json:"couponMessage,omitempty"`
	Warnings       []string              `json:"warnings,omitempty"`
}

func FromQuote(q *shared.Quote, couponCode string) (*QuoteResponse, error) {
	eligible, err := FromCombos(q.EligibleCombos)
	if err != nil {
		return nil, err
	}
	res := &QuoteResponse{
		HomestayID:     q.HomestayID,
		Guests:         q.Guests,
		Interval:       fromInterval(q.Interval),
		Dynamic:        FromDynamicPrice(q.Dynamic),
		EligibleCombos: eligible,
		Breakdown:      FromBreakdown(q.Breakdown),
		CouponMessage:  q.CouponMessage,
		Warnings:       q.Warnings,
	}
	if q.SelectedCombo != nil {
		if res.SelectedCombo, err = FromCombo(*q.SelectedCombo); err != nil {
			return nil, err
		}
	}
	if q.CouponStatus != shared.CouponNone {
		c := &QuoteCouponResponse{
			Code:    couponCode,
			Status:  string(q.CouponStatus),
			Message: q.CouponMessage,
		}
		if q.Coupon != nil {
			c.Code = q.Coupon.Code.String()
			discount := NewAmount(q.Coupon.DiscountAmount)
			c.Amount = &discount
		}
		res.Coupon = c
	}
	return res, nil
}
