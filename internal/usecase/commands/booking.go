package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"homestay-pricing/internal/domain/availability"
	"homestay-pricing/internal/domain/booking"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/infra/cache"
	"homestay-pricing/internal/pkg/clock"
	"homestay-pricing/internal/pkg/errs"
	"homestay-pricing/internal/usecase/shared"
)

type IdempotencyStore interface {
	TryInsert(ctx context.Context, key, requestHash string) (bool, error)
	Get(ctx context.Context, key string) (*cache.IdempotencyRecord, error)
	Complete(ctx context.Context, key, requestHash string, result any) error
	Release(ctx context.Context, key string) error
}

type AvailabilitySource interface {
	QuickAvailability(ctx context.Context, homestayID int64, month availability.Month) (availability.Calendar, error)
}

type BookingGateway interface {
	SubmitBooking(ctx context.Context, token string, s booking.Submission) (booking.Confirmation, error)
}

type BookingEventPublisher interface {
	PublishSubmitted(ctx context.Context, ev booking.SubmittedEvent) error
}

type SubmitBookingInput struct {
	Quote         shared.QuoteInput
	GuestInfo     booking.GuestInfo
	PaymentMethod string
	// ExpectedTotal is the total the guest was shown. A mismatch aborts the submission.
	ExpectedTotal *money.VND
	Token         string
}

type SubmitBookingResult struct {
	Confirmation    booking.Confirmation  `json:"confirmation"`
	Breakdown       pricing.Breakdown     `json:"breakdown"`
	PaymentMethod   booking.PaymentMethod `json:"paymentMethod"`
	RequiresPolling bool                  `json:"requiresPolling"`
	Warnings        []string              `json:"warnings,omitempty"`
	IsReplayed      bool                  `json:"-"`
}

type BookingCommands interface {
	Submit(ctx context.Context, in SubmitBookingInput, idempotencyKey string) (*SubmitBookingResult, error)
}

type bookingCommandsImpl struct {
	quoter       *shared.Quoter
	idempotency  IdempotencyStore
	availability AvailabilitySource
	gateway      BookingGateway
	events       BookingEventPublisher
	clock        clock.Clock
	logger       *slog.Logger
}

func NewBookingCommands(
	quoter *shared.Quoter,
	idempotency IdempotencyStore,
	availability AvailabilitySource,
	gateway BookingGateway,
	events BookingEventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		quoter:       quoter,
		idempotency:  idempotency,
		availability: availability,
		gateway:      gateway,
		events:       events,
		clock:        clk,
		logger:       logger,
	}
}

func (b *bookingCommandsImpl) Submit(ctx context.Context, in SubmitBookingInput, idempotencyKey string) (*SubmitBookingResult, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" {
		return nil, errs.ErrIdempotencyKeyRequired
	}
	method, err := booking.NewPaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := in.GuestInfo.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	key := scopedKey(in.Quote.UserID, idempotencyKey)
	requestHash, err := calculateRequestHash(in)
	if err != nil {
		return nil, err
	}

	replayed, err := b.handleIdempotency(ctx, key, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	result, err := b.submit(ctx, in, method)
	if err != nil {
		if releaseErr := b.idempotency.Release(context.WithoutCancel(ctx), key); releaseErr != nil {
			b.logger.WarnContext(ctx, "failed to release idempotency key", slog.Any("error", releaseErr))
		}
		return nil, err
	}

	if completeErr := b.idempotency.Complete(context.WithoutCancel(ctx), key, requestHash, result); completeErr != nil {
		// the booking exists upstream, a lost record only disables replay
		b.logger.WarnContext(ctx, "failed to store idempotent result",
			slog.String("booking_code", result.Confirmation.BookingCode), slog.Any("error", completeErr))
	}
	return result, nil
}

func (b *bookingCommandsImpl) handleIdempotency(ctx context.Context, key, requestHash string) (*SubmitBookingResult, error) {
	owned, err := b.idempotency.TryInsert(ctx, key, requestHash)
	if err != nil {
		return nil, shared.MapDomainError(err)
	}
	if owned {
		return nil, nil
	}

	existing, err := b.idempotency.Get(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// released or expired between the two calls
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, shared.MapDomainError(err)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case cache.IdempotencyCompleted:
		var result SubmitBookingResult
		if err := json.Unmarshal(existing.Result, &result); err != nil {
			return nil, errs.Wrap(err, "decode stored booking result")
		}
		result.IsReplayed = true
		return &result, nil
	case cache.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingCommandsImpl) submit(ctx context.Context, in SubmitBookingInput, method booking.PaymentMethod) (*SubmitBookingResult, error) {
	quote, err := b.quoter.Quote(ctx, in.Quote)
	if err != nil {
		return nil, err
	}
	if in.Quote.CouponCode != "" && quote.CouponStatus != shared.CouponApplied {
		if quote.CouponError != nil {
			return nil, quote.CouponError
		}
		return nil, errs.Mark(errs.Newf("coupon %q was not applied", in.Quote.CouponCode), errs.ErrInvalidCoupon)
	}
	if in.ExpectedTotal != nil && *in.ExpectedTotal != quote.Breakdown.Total {
		return nil, errs.Mark(
			errs.Newf("expected total %d, current total %d", in.ExpectedTotal.Int64(), quote.Breakdown.Total.Int64()),
			errs.ErrPriceChanged)
	}

	if err := b.checkAvailability(ctx, in.Quote.HomestayID, quote.Interval); err != nil {
		return nil, err
	}

	sub, err := booking.NewSubmission(
		quote.HomestayID,
		in.Quote.UserID,
		quote.Interval,
		quote.Guests,
		in.GuestInfo,
		method,
		&quote.Breakdown,
		quote.Coupon,
		quote.SelectedCombo,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	confirmation, err := b.gateway.SubmitBooking(ctx, in.Token, sub)
	if err != nil {
		var rejected *booking.RejectedError
		if errors.As(err, &rejected) {
			return nil, errs.Mark(err, errs.ErrBookingFailed)
		}
		return nil, shared.MapDomainError(err)
	}
	b.logger.InfoContext(ctx, "booking submitted",
		slog.String("booking_code", confirmation.BookingCode),
		slog.Int64("homestay_id", sub.HomestayID),
		slog.Int64("total", sub.Total().Int64()))

	ev := booking.NewSubmittedEvent(sub, confirmation, b.clock.Now())
	if pubErr := b.events.PublishSubmitted(context.WithoutCancel(ctx), ev); pubErr != nil {
		b.logger.WarnContext(ctx, "failed to publish booking event",
			slog.String("booking_code", confirmation.BookingCode), slog.Any("error", pubErr))
	}

	return &SubmitBookingResult{
		Confirmation:    confirmation,
		Breakdown:       quote.Breakdown,
		PaymentMethod:   method,
		RequiresPolling: method.RequiresPolling(),
		Warnings:        quote.Warnings,
	}, nil
}

// checkAvailability refuses the stay when any night is held or taken. It fails
// closed when the calendar cannot be read.
func (b *bookingCommandsImpl) checkAvailability(ctx context.Context, homestayID int64, iv stay.Interval) error {
	months := availability.MonthsCovering(iv)
	calendars := make([]availability.Calendar, 0, len(months))
	for _, m := range months {
		cal, err := b.availability.QuickAvailability(ctx, homestayID, m)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return errs.Mark(err, errs.ErrUpstreamUnavailable)
		}
		calendars = append(calendars, cal)
	}

	blocked := availability.Blocking(iv, calendars...)
	if len(blocked) == 0 {
		return nil
	}
	dates := make([]string, len(blocked))
	for i, d := range blocked {
		dates[i] = d.Date.Format(stay.DateLayout)
	}
	return errs.Mark(errs.Newf("nights not available: %s", strings.Join(dates, ", ")), errs.ErrDatesUnavailable)
}

func scopedKey(userID *int64, key string) string {
	if userID == nil {
		return "anonymous:" + key
	}
	return fmt.Sprintf("%d:%s", *userID, key)
}

func calculateRequestHash(in SubmitBookingInput) (string, error) {
	in.Token = ""
	data, err := json.Marshal(in)
	if err != nil {
		return "", errs.Wrap(err, "hash booking request")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
