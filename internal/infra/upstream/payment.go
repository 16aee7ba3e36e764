package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"homestay-pricing/internal/domain/payment"

	"github.com/shopspring/decimal"
)

type paymentStatusResponse struct {
	PaymentID     int64           `json:"payment_id"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID *string         `json:"transaction_id"`
	PaidAt        *string         `json:"paid_at"`
	BookingStatus string          `json:"booking_status"`
}

// PaymentStatusSource binds the caller's token so the poller can query on their behalf.
func (c *Client) PaymentStatusSource(token string) payment.StatusSource {
	return paymentStatusSource{client: c, token: token}
}

type paymentStatusSource struct {
	client *Client
	token  string
}

func (s paymentStatusSource) PaymentStatus(ctx context.Context, provider payment.Provider, paymentID int64) (payment.StatusReport, error) {
	var resp paymentStatusResponse
	path := fmt.Sprintf("/api/payments/%s/status/%d", provider, paymentID)
	if err := s.client.do(ctx, http.MethodGet, path, s.token, nil, &resp); err != nil {
		return payment.StatusReport{}, err
	}

	amount, err := s.client.amount(resp.Amount, "payment amount")
	if err != nil {
		return payment.StatusReport{}, err
	}

	report := payment.StatusReport{
		PaymentID:     resp.PaymentID,
		Status:        payment.Status(resp.Status),
		Amount:        amount,
		BookingStatus: resp.BookingStatus,
	}
	if resp.TransactionID != nil {
		report.TransactionID = *resp.TransactionID
	}
	if resp.PaidAt != nil {
		if t, err := parseTimestamp(*resp.PaidAt); err == nil {
			report.PaidAt = &t
		}
	}
	return report, nil
}

// Timestamps without a zone are read as UTC.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", raw)
}
