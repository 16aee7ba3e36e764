package request

import (
	"strings"

	"homestay-pricing/internal/domain/booking"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/usecase/commands"
	"homestay-pricing/internal/usecase/shared"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type GuestInfoRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// CreateBookingRequest never carries a nightly rate: the booking is always
// priced from the catalog.
type CreateBookingRequest struct {
	HomestayID    int64            `json:"homestayId"`
	CheckIn       string           `json:"checkIn"`
	CheckOut      string           `json:"checkOut"`
	Guests        int              `json:"guests"`
	CouponCode    string           `json:"couponCode,omitempty"`
	ComboID       *int64           `json:"comboId,omitempty"`
	GuestInfo     GuestInfoRequest `json:"guestInfo"`
	PaymentMethod string           `json:"paymentMethod"`
	ExpectedTotal *int64           `json:"expectedTotal,omitempty"`
}

func (r CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HomestayID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.CheckIn, validation.Required),
		validation.Field(&r.CheckOut, validation.Required),
		validation.Field(&r.Guests, validation.Required, validation.Min(1), validation.Max(maxGuests)),
		validation.Field(&r.CouponCode, validation.Length(0, 50)),
		validation.Field(&r.ComboID, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&r.PaymentMethod, validation.Required),
		validation.Field(&r.ExpectedTotal, validation.Min(int64(0)), validation.Max(money.MaxAmount.Int64())),
	)
}

func (r CreateBookingRequest) ToInput(userID *int64, token string) commands.SubmitBookingInput {
	return commands.SubmitBookingInput{
		Quote: shared.QuoteInput{
			HomestayID: r.HomestayID,
			CheckIn:    strings.TrimSpace(r.CheckIn),
			CheckOut:   strings.TrimSpace(r.CheckOut),
			Guests:     r.Guests,
			CouponCode: strings.TrimSpace(r.CouponCode),
			ComboID:    r.ComboID,
			UserID:     userID,
		},
		GuestInfo: booking.GuestInfo{
			FullName:        strings.TrimSpace(r.GuestInfo.FullName),
			Email:           strings.TrimSpace(r.GuestInfo.Email),
			Phone:           strings.TrimSpace(r.GuestInfo.Phone),
			SpecialRequests: strings.TrimSpace(r.GuestInfo.SpecialRequests),
		},
		PaymentMethod: r.PaymentMethod,
		ExpectedTotal: vndPtr(r.ExpectedTotal),
		Token:         token,
	}
}
