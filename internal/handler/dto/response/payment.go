package response

import (
	"time"

	"homestay-pricing/internal/domain/payment"
)

type PaymentStatusEvent struct {
	PaymentID     int64      `json:"paymentId"`
	Status        string     `json:"status"`
	Amount        Amount     `json:"amount"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	BookingStatus string     `json:"bookingStatus,omitempty"`
}

func FromPaymentStatus(r payment.StatusReport) *PaymentStatusEvent {
	return &PaymentStatusEvent{
		PaymentID:     r.PaymentID,
		Status:        string(r.Status),
		Amount:        NewAmount(r.Amount),
		TransactionID: r.TransactionID,
		PaidAt:        r.PaidAt,
		BookingStatus: r.BookingStatus,
	}
}

type PaymentOutcomeEvent struct {
	Outcome string              `json:"outcome"`
	Polls   int                 `json:"polls"`
	Errors  int                 `json:"errors"`
	Last    *PaymentStatusEvent `json:"last,omitempty"`
}

func FromPaymentResult(r *payment.Result) *PaymentOutcomeEvent {
	res := &PaymentOutcomeEvent{
		Outcome: string(r.Outcome),
		Polls:   r.Polls,
		Errors:  r.Errors,
	}
	if r.Last != nil {
		res.Last = FromPaymentStatus(*r.Last)
	}
	return res
}
