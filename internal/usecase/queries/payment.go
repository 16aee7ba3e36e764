package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"homestay-pricing/internal/domain/payment"
	"homestay-pricing/internal/pkg/errs"
)

// PaymentStatusSources hands out a status source acting for the caller's token.
type PaymentStatusSources interface {
	PaymentStatusSource(token string) payment.StatusSource
}

type WatchPaymentInput struct {
	Provider  string
	PaymentID int64
	Token     string
}

type PaymentQueries interface {
	// Watch polls until the payment settles, the poll window closes or ctx ends.
	// A closed window is reported as OutcomeTimedOut without an error.
	Watch(ctx context.Context, in WatchPaymentInput, onChange func(payment.StatusReport)) (*payment.Result, error)
}

type paymentQueriesImpl struct {
	sources  PaymentStatusSources
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewPaymentQueries(sources PaymentStatusSources, interval, timeout time.Duration, logger *slog.Logger) PaymentQueries {
	return &paymentQueriesImpl{
		sources:  sources,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

func (q *paymentQueriesImpl) Watch(ctx context.Context, in WatchPaymentInput, onChange func(payment.StatusReport)) (*payment.Result, error) {
	provider, err := payment.NewProvider(in.Provider)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownPaymentProvider)
	}
	if in.PaymentID <= 0 {
		return nil, errs.Mark(errs.New("payment id must be positive"), errs.ErrDomainValidation)
	}

	poller := payment.NewPoller(q.sources.PaymentStatusSource(in.Token), q.interval, q.timeout)
	q.logger.InfoContext(ctx, "payment polling started",
		slog.String("provider", string(provider)), slog.Int64("payment_id", in.PaymentID))

	result, err := poller.Run(ctx, provider, in.PaymentID, onChange)
	q.logger.InfoContext(context.WithoutCancel(ctx), "payment polling finished",
		slog.String("provider", string(provider)),
		slog.Int64("payment_id", in.PaymentID),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("polls", result.Polls),
		slog.Int("errors", result.Errors))

	if err != nil && !errors.Is(err, payment.ErrPollTimeout) {
		return &result, err
	}
	return &result, nil
}
