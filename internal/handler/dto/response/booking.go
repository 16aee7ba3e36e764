package response

import (
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/usecase/commands"
)

type BookingResponse struct {
	ID              int64              `json:"id"`
	BookingCode     string             `json:"bookingCode"`
	Status          string             `json:"status"`
	CheckIn         string             `json:"checkIn"`
	CheckOut        string             `json:"checkOut"`
	TotalPrice      Amount             `json:"totalPrice"`
	PaymentID       *int64             `json:"paymentId,omitempty"`
	PaymentMethod   string             `json:"paymentMethod"`
	RequiresPolling bool               `json:"requiresPolling"`
	Breakdown       *BreakdownResponse `json:"breakdown"`
	Warnings        []string           `json:"warnings,omitempty"`
	Replayed        bool               `json:"replayed"`
}

func FromBooking(r *commands.SubmitBookingResult) *BookingResponse {
	c := r.Confirmation
	return &BookingResponse{
		ID:              c.ID,
		BookingCode:     c.BookingCode,
		Status:          c.Status,
		CheckIn:         c.CheckIn.Format(stay.DateLayout),
		CheckOut:        c.CheckOut.Format(stay.DateLayout),
		TotalPrice:      NewAmount(c.TotalPrice),
		PaymentID:       c.PaymentID,
		PaymentMethod:   string(r.PaymentMethod),
		RequiresPolling: r.RequiresPolling,
		Breakdown:       FromBreakdown(r.Breakdown),
		Warnings:        r.Warnings,
		Replayed:        r.IsReplayed,
	}
}
