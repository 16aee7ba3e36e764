package upstream

import (
	"context"
	"net/http"
	"time"

	"homestay-pricing/internal/domain/booking"
	"homestay-pricing/internal/domain/stay"

	"github.com/shopspring/decimal"
)

type bookingGuestInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type createBookingRequest struct {
	HomestayID      int64            `json:"homestay_id"`
	CheckIn         string           `json:"check_in"`
	CheckOut        string           `json:"check_out"`
	Guests          int              `json:"guests"`
	TotalPrice      int64            `json:"total_price"`
	OriginalPrice   int64            `json:"original_price"`
	DiscountAmount  int64            `json:"discount_amount"`
	CouponCode      *string          `json:"coupon_code,omitempty"`
	ComboID         *int64           `json:"combo_id,omitempty"`
	GuestInfo       bookingGuestInfo `json:"guest_info"`
	PaymentMethod   string           `json:"payment_method"`
	SpecialRequests string           `json:"special_requests,omitempty"`
}

type createBookingResponse struct {
	Message string `json:"message"`
	Booking struct {
		ID          int64           `json:"id"`
		BookingCode string          `json:"booking_code"`
		Status      string          `json:"status"`
		CheckIn     string          `json:"check_in"`
		CheckOut    string          `json:"check_out"`
		TotalPrice  decimal.Decimal `json:"total_price"`
		PaymentID   *int64          `json:"payment_id"`
	} `json:"booking"`
}

// SubmitBooking creates the reservation on behalf of the token's owner.
func (c *Client) SubmitBooking(ctx context.Context, token string, s booking.Submission) (booking.Confirmation, error) {
	req := createBookingRequest{
		HomestayID:      s.HomestayID,
		CheckIn:         s.Interval.CheckIn().Format(stay.DateLayout),
		CheckOut:        s.Interval.CheckOut().Format(stay.DateLayout),
		Guests:          s.Guests,
		TotalPrice:      s.Total().Int64(),
		OriginalPrice:   s.Breakdown.Subtotal.Int64(),
		DiscountAmount:  (s.Breakdown.DiscountAmount + s.Breakdown.ComboDiscount).Int64(),
		PaymentMethod:   string(s.PaymentMethod),
		SpecialRequests: s.GuestInfo.SpecialRequests,
		GuestInfo: bookingGuestInfo{
			FullName: s.GuestInfo.FullName,
			Email:    s.GuestInfo.Email,
			Phone:    s.GuestInfo.Phone,
		},
	}
	if s.Coupon != nil {
		code := s.Coupon.Code.String()
		req.CouponCode = &code
	}
	if s.Combo != nil {
		id := s.Combo.ID
		req.ComboID = &id
	}

	var resp createBookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", token, req, &resp); err != nil {
		if rejection, ok := Rejection(err); ok {
			return booking.Confirmation{}, &booking.RejectedError{Reason: rejection.Detail, Err: err}
		}
		return booking.Confirmation{}, err
	}

	// the booking exists upstream by now, so an unreadable total falls back to ours
	total, err := c.amount(resp.Booking.TotalPrice, "booking total_price")
	if err != nil {
		total = s.Total()
	}

	return booking.Confirmation{
		ID:          resp.Booking.ID,
		BookingCode: resp.Booking.BookingCode,
		Status:      resp.Booking.Status,
		CheckIn:     parseDateOr(resp.Booking.CheckIn, s.Interval.CheckIn()),
		CheckOut:    parseDateOr(resp.Booking.CheckOut, s.Interval.CheckOut()),
		TotalPrice:  total,
		PaymentID:   resp.Booking.PaymentID,
	}, nil
}

func parseDateOr(raw string, fallback time.Time) time.Time {
	if t, err := stay.ParseDate(raw); err == nil {
		return t
	}
	return fallback
}
