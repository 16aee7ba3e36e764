package response

import (
	"homestay-pricing/internal/domain/pricing"
)

type SessionResponse struct {
	ID             string                 `json:"id"`
	HomestayID     int64                  `json:"homestayId"`
	BasePrice      Amount                 `json:"basePrice"`
	Guests         int                    `json:"guests"`
	Revision       uint64                 `json:"revision"`
	State          string                 `json:"state"`
	CheckIn        string                 `json:"checkIn,omitempty"`
	CheckOut       string                 `json:"checkOut,omitempty"`
	DateError      string                 `json:"dateError,omitempty"`
	Stay           *StayResponse          `json:"stay,omitempty"`
	Dynamic        *DynamicPriceResponse  `json:"dynamic,omitempty"`
	EligibleCombos []ComboResponse        `json:"eligibleCombos"`
	SelectedCombo  *ComboResponse         `json:"selectedCombo,omitempty"`
	Coupon         *AppliedCouponResponse `json:"coupon,omitempty"`
	Breakdown      *BreakdownResponse     `json:"breakdown,omitempty"`
	AwaitingPrice  bool                   `json:"awaitingPrice"`
	ReadyToSubmit  bool                   `json:"readyToSubmit"`
	Notices        []string               `json:"notices,omitempty"`
}

func FromSession(pc *pricing.Context) (*SessionResponse, error) {
	eligible, err := FromCombos(pc.EligibleCombos())
	if err != nil {
		return nil, err
	}
	res := &SessionResponse{
		ID:             pc.ID,
		HomestayID:     pc.HomestayID,
		BasePrice:      NewAmount(pc.BasePrice),
		Guests:         pc.Guests,
		Revision:       pc.Revision,
		State:          string(pc.State),
		CheckIn:        pc.CheckIn,
		CheckOut:       pc.CheckOut,
		DateError:      pc.DateError,
		EligibleCombos: eligible,
		Coupon:         fromAppliedCoupon(pc.Coupon),
		AwaitingPrice:  pc.AwaitingPrice(),
		ReadyToSubmit:  pc.ReadyToSubmit(),
		Notices:        pc.Notices,
	}
	if pc.Interval != nil {
		res.Stay = fromInterval(*pc.Interval)
	}
	if pc.Dynamic != nil {
		res.Dynamic = FromDynamicPrice(*pc.Dynamic)
	}
	if pc.SelectedCombo != nil {
		if res.SelectedCombo, err = FromCombo(*pc.SelectedCombo); err != nil {
			return nil, err
		}
	}
	if pc.Breakdown != nil {
		res.Breakdown = FromBreakdown(*pc.Breakdown)
	}
	return res, nil
}
