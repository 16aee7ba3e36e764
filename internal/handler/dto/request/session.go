package request

import (
	"strings"

	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/usecase/commands"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateSessionRequest struct {
	HomestayID int64  `json:"homestayId"`
	Guests     int    `json:"guests"`
	BasePrice  *int64 `json:"basePrice,omitempty"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
}

func (r CreateSessionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HomestayID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Guests, validation.Required, validation.Min(1), validation.Max(maxGuests)),
		validation.Field(&r.BasePrice, validation.Min(int64(0)), validation.Max(pricing.MaxBasePrice.Int64())),
	)
}

func (r CreateSessionRequest) ToInput() commands.CreateSessionInput {
	return commands.CreateSessionInput{
		HomestayID: r.HomestayID,
		Guests:     r.Guests,
		BasePrice:  vndPtr(r.BasePrice),
		CheckIn:    strings.TrimSpace(r.CheckIn),
		CheckOut:   strings.TrimSpace(r.CheckOut),
	}
}

// SessionDatesRequest allows empty dates; the session then reports them as invalid.
type SessionDatesRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type SessionGuestsRequest struct {
	Guests int `json:"guests"`
}

func (r SessionGuestsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Guests, validation.Required, validation.Min(1), validation.Max(maxGuests)),
	)
}

type SessionComboRequest struct {
	ComboID int64 `json:"comboId"`
}

func (r SessionComboRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ComboID, validation.Required, validation.Min(int64(1))),
	)
}

type SessionCouponRequest struct {
	Code string `json:"code"`
}

func (r SessionCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(1, 50)),
	)
}
