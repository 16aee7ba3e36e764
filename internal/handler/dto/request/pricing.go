package request

import (
	"strings"

	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/usecase/queries"
	"homestay-pricing/internal/usecase/shared"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxGuests = 50

type QuoteRequest struct {
	HomestayID int64  `json:"homestayId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
	BasePrice  *int64 `json:"basePrice,omitempty"`
	CouponCode string `json:"couponCode,omitempty"`
	ComboID    *int64 `json:"comboId,omitempty"`
}

func (r QuoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HomestayID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.CheckIn, validation.Required),
		validation.Field(&r.CheckOut, validation.Required),
		validation.Field(&r.Guests, validation.Required, validation.Min(1), validation.Max(maxGuests)),
		validation.Field(&r.BasePrice, validation.Min(int64(0)), validation.Max(pricing.MaxBasePrice.Int64())),
		validation.Field(&r.CouponCode, validation.Length(0, 50)),
		validation.Field(&r.ComboID, validation.NilOrNotEmpty, validation.Min(int64(1))),
	)
}

func (r QuoteRequest) ToInput(userID *int64) shared.QuoteInput {
	return shared.QuoteInput{
		HomestayID: r.HomestayID,
		CheckIn:    strings.TrimSpace(r.CheckIn),
		CheckOut:   strings.TrimSpace(r.CheckOut),
		Guests:     r.Guests,
		BasePrice:  vndPtr(r.BasePrice),
		CouponCode: strings.TrimSpace(r.CouponCode),
		ComboID:    r.ComboID,
		UserID:     userID,
	}
}

type DynamicPriceRequest struct {
	HomestayID int64  `json:"homestayId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	BasePrice  *int64 `json:"basePrice,omitempty"`
}

func (r DynamicPriceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HomestayID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.CheckIn, validation.Required),
		validation.Field(&r.CheckOut, validation.Required),
		validation.Field(&r.BasePrice, validation.Min(int64(0)), validation.Max(pricing.MaxBasePrice.Int64())),
	)
}

func (r DynamicPriceRequest) ToInput() queries.DynamicPriceInput {
	return queries.DynamicPriceInput{
		HomestayID: r.HomestayID,
		CheckIn:    strings.TrimSpace(r.CheckIn),
		CheckOut:   strings.TrimSpace(r.CheckOut),
		BasePrice:  vndPtr(r.BasePrice),
	}
}

// ComboListQuery is bound from the query string.
type ComboListQuery struct {
	HomestayID        int64  `form:"homestayId"`
	CheckIn           string `form:"checkIn"`
	CheckOut          string `form:"checkOut"`
	MinNights         *int   `form:"minNights"`
	IncludesBreakfast *bool  `form:"includesBreakfast"`
}

func (q ComboListQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.HomestayID, validation.Min(int64(0))),
		validation.Field(&q.CheckOut, validation.When(q.CheckIn != "", validation.Required)),
		validation.Field(&q.CheckIn, validation.When(q.CheckOut != "", validation.Required)),
		validation.Field(&q.MinNights, validation.NilOrNotEmpty, validation.Min(1)),
	)
}

func (q ComboListQuery) ToInput() queries.ComboListInput {
	return queries.ComboListInput{
		HomestayID:        q.HomestayID,
		CheckIn:           strings.TrimSpace(q.CheckIn),
		CheckOut:          strings.TrimSpace(q.CheckOut),
		MinNights:         q.MinNights,
		IncludesBreakfast: q.IncludesBreakfast,
	}
}

type CouponValidateRequest struct {
	Code       string `json:"code"`
	Subtotal   int64  `json:"subtotal"`
	HomestayID int64  `json:"homestayId"`
}

func (r CouponValidateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Subtotal, validation.Min(int64(0))),
		validation.Field(&r.HomestayID, validation.Required, validation.Min(int64(1))),
	)
}

func (r CouponValidateRequest) ToInput(userID *int64) queries.CouponCheckInput {
	return queries.CouponCheckInput{
		Code:       r.Code,
		Subtotal:   money.VND(r.Subtotal),
		HomestayID: r.HomestayID,
		UserID:     userID,
	}
}

func vndPtr(v *int64) *money.VND {
	if v == nil {
		return nil
	}
	vnd := money.VND(*v)
	return &vnd
}
