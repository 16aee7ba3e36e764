package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"homestay-pricing/internal/domain/money"
)

var (
	ErrUnknownProvider = errors.New("payment: unknown provider")
	ErrPollTimeout     = errors.New("payment status polling timed out")
)

type Provider string

const (
	ProviderMoMo  Provider = "momo"
	ProviderVNPay Provider = "vnpay"
)

func NewProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(s)); p {
	case ProviderMoMo, ProviderVNPay:
		return p, nil
	default:
		return "", ErrUnknownProvider
	}
}

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusFailed
}

type StatusReport struct {
	PaymentID     int64      `json:"paymentId"`
	Status        Status     `json:"status"`
	Amount        money.VND  `json:"amount"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	BookingStatus string     `json:"bookingStatus,omitempty"`
}

type StatusSource interface {
	PaymentStatus(ctx context.Context, provider Provider, paymentID int64) (StatusReport, error)
}

type Outcome string

const (
	OutcomePaid      Outcome = "paid"
	OutcomeFailed    Outcome = "failed"
	OutcomeTimedOut  Outcome = "timeout"
	OutcomeCancelled Outcome = "cancelled"
)

type Result struct {
	Outcome Outcome
	Last    *StatusReport
	Polls   int
	// Errors counts polls that failed to reach the provider.
	Errors int
}

// Poller asks the provider for a payment's status on a fixed interval until the
// payment is settled, the deadline passes or ctx is cancelled.
type Poller struct {
	source   StatusSource
	interval time.Duration
	timeout  time.Duration
}

func NewPoller(source StatusSource, interval, timeout time.Duration) *Poller {
	return &Poller{source: source, interval: interval, timeout: timeout}
}

// Run blocks until polling ends. onChange is called from the polling goroutine
// each time the reported status differs from the previous report. A failed
// poll is counted and retried on the next tick.
func (p *Poller) Run(ctx context.Context, provider Provider, paymentID int64, onChange func(StatusReport)) (Result, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	deadline := time.NewTimer(p.timeout)
	defer deadline.Stop()

	var res Result
	for {
		select {
		case <-ctx.Done():
			res.Outcome = OutcomeCancelled
			return res, ctx.Err()
		case <-deadline.C:
			res.Outcome = OutcomeTimedOut
			return res, ErrPollTimeout
		case <-ticker.C:
		}

		res.Polls++
		report, err := p.source.PaymentStatus(ctx, provider, paymentID)
		if err != nil {
			res.Errors++
			continue
		}

		if res.Last == nil || res.Last.Status != report.Status {
			if onChange != nil {
				onChange(report)
			}
		}
		res.Last = &report

		switch report.Status {
		case StatusPaid:
			res.Outcome = OutcomePaid
			return res, nil
		case StatusFailed:
			res.Outcome = OutcomeFailed
			return res, nil
		}
	}
}
