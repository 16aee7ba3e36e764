package response

import "homestay-pricing/internal/domain/money"

// Amount carries a VND value together with its vi-VN display form.
type Amount struct {
	Value     int64  `json:"value"`
	Formatted string `json:"formatted"`
}

func NewAmount(v money.VND) Amount {
	return Amount{Value: v.Int64(), Formatted: v.Format()}
}

func amountPtr(v *money.VND) *Amount {
	if v == nil {
		return nil
	}
	a := NewAmount(*v)
	return &a
}
