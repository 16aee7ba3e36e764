package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrInvalidGuests        = errors.New("guests must be at least 1")
	ErrPriceNotComputed     = errors.New("booking price has not been computed")
)

type PaymentMethod string

const (
	PaymentMoMo         PaymentMethod = "momo"
	PaymentVNPay        PaymentMethod = "vnpay"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentStripe       PaymentMethod = "stripe"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

func NewPaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case PaymentMoMo, PaymentVNPay, PaymentPayPal, PaymentStripe, PaymentBankTransfer:
		return m, nil
	default:
		return "", ErrUnknownPaymentMethod
	}
}

// RequiresPolling reports whether confirmation arrives asynchronously from a wallet provider.
func (m PaymentMethod) RequiresPolling() bool {
	return m == PaymentMoMo || m == PaymentVNPay
}

var vnPhone = regexp.MustCompile(`^(\+84|0)[0-9]{9,10}$`)

type GuestInfo struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

func (g GuestInfo) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&g.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&g.Phone,
			validation.Required.Error("phone is required"),
			validation.Match(vnPhone).Error("invalid phone number"),
		),
		validation.Field(&g.SpecialRequests, validation.Length(0, 1000)),
	)
}

// Submission is a fully priced booking ready to send to the reservations service.
type Submission struct {
	HomestayID    int64
	UserID        *int64
	Interval      stay.Interval
	Guests        int
	GuestInfo     GuestInfo
	PaymentMethod PaymentMethod
	Breakdown     pricing.Breakdown
	Coupon        *coupon.Applied
	Combo         *combo.Package
}

func NewSubmission(
	homestayID int64,
	userID *int64,
	iv stay.Interval,
	guests int,
	guest GuestInfo,
	method PaymentMethod,
	breakdown *pricing.Breakdown,
	applied *coupon.Applied,
	selected *combo.Package,
) (Submission, error) {
	if guests < 1 {
		return Submission{}, ErrInvalidGuests
	}
	if breakdown == nil {
		return Submission{}, ErrPriceNotComputed
	}
	if err := guest.Validate(); err != nil {
		return Submission{}, err
	}
	return Submission{
		HomestayID:    homestayID,
		UserID:        userID,
		Interval:      iv,
		Guests:        guests,
		GuestInfo:     guest,
		PaymentMethod: method,
		Breakdown:     *breakdown,
		Coupon:        applied,
		Combo:         selected,
	}, nil
}

func (s Submission) Total() money.VND {
	return s.Breakdown.Total
}

// RejectedError is a booking the reservations service refused, with its reason verbatim.
type RejectedError struct {
	Reason string
	Err    error
}

func (e *RejectedError) Error() string {
	return e.Reason
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// Confirmation is the record returned by the reservations service.
type Confirmation struct {
	ID          int64     `json:"id"`
	BookingCode string    `json:"bookingCode"`
	Status      string    `json:"status"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	TotalPrice  money.VND `json:"totalPrice"`
	PaymentID   *int64    `json:"paymentId,omitempty"`
}

const EventSubmitted = "booking.submitted"

// SubmittedEvent is published once a booking has been accepted.
type SubmittedEvent struct {
	Type          string        `json:"type"`
	BookingID     int64         `json:"bookingId"`
	BookingCode   string        `json:"bookingCode"`
	HomestayID    int64         `json:"homestayId"`
	UserID        *int64        `json:"userId,omitempty"`
	CheckIn       string        `json:"checkIn"`
	CheckOut      string        `json:"checkOut"`
	Nights        int           `json:"nights"`
	Guests        int           `json:"guests"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Total         money.VND     `json:"total"`
	CouponCode    string        `json:"couponCode,omitempty"`
	ComboID       *int64        `json:"comboId,omitempty"`
	OccurredAt    time.Time     `json:"occurredAt"`
}

func NewSubmittedEvent(s Submission, c Confirmation, at time.Time) SubmittedEvent {
	ev := SubmittedEvent{
		Type:          EventSubmitted,
		BookingID:     c.ID,
		BookingCode:   c.BookingCode,
		HomestayID:    s.HomestayID,
		UserID:        s.UserID,
		CheckIn:       s.Interval.CheckIn().Format(stay.DateLayout),
		CheckOut:      s.Interval.CheckOut().Format(stay.DateLayout),
		Nights:        s.Interval.Nights(),
		Guests:        s.Guests,
		PaymentMethod: s.PaymentMethod,
		Total:         s.Total(),
		OccurredAt:    at,
	}
	if s.Coupon != nil {
		ev.CouponCode = s.Coupon.Code.String()
	}
	if s.Combo != nil {
		id := s.Combo.ID
		ev.ComboID = &id
	}
	return ev
}
