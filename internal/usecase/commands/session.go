package commands

import (
	"context"
	"errors"
	"log/slog"

	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/pkg/errs"
	"homestay-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionStore interface {
	Create(ctx context.Context, pc pricing.Context) error
	Get(ctx context.Context, id string) (pricing.Context, error)
	Update(ctx context.Context, id string, fn func(pricing.Context) (pricing.Context, error)) (pricing.Context, error)
}

type CreateSessionInput struct {
	HomestayID int64
	Guests     int
	BasePrice  *money.VND
	CheckIn    string
	CheckOut   string
}

type SessionCommands interface {
	Create(ctx context.Context, in CreateSessionInput) (*pricing.Context, error)
	ChangeDates(ctx context.Context, id, checkIn, checkOut string) (*pricing.Context, error)
	ChangeGuests(ctx context.Context, id string, guests int) (*pricing.Context, error)
	SelectCombo(ctx context.Context, id string, comboID int64) (*pricing.Context, error)
	ClearCombo(ctx context.Context, id string) (*pricing.Context, error)
	ApplyCoupon(ctx context.Context, id, code string, userID *int64) (*pricing.Context, error)
	RemoveCoupon(ctx context.Context, id string) (*pricing.Context, error)
}

type sessionCommandsImpl struct {
	store      SessionStore
	quoter     *shared.Quoter
	calculator shared.PriceCalculator
	coupons    shared.CouponChecker
	logger     *slog.Logger
}

func NewSessionCommands(
	store SessionStore,
	quoter *shared.Quoter,
	calculator shared.PriceCalculator,
	coupons shared.CouponChecker,
	logger *slog.Logger,
) SessionCommands {
	return &sessionCommandsImpl{
		store:      store,
		quoter:     quoter,
		calculator: calculator,
		coupons:    coupons,
		logger:     logger,
	}
}

func (s *sessionCommandsImpl) Create(ctx context.Context, in CreateSessionInput) (*pricing.Context, error) {
	if in.Guests < 1 {
		return nil, errs.Mark(pricing.ErrInvalidGuests, errs.ErrDomainValidation)
	}
	base, err := s.quoter.BasePrice(ctx, in.HomestayID, in.BasePrice)
	if err != nil {
		return nil, err
	}

	policy := s.quoter.Policy()
	pc := pricing.NewContext(uuid.NewString(), in.HomestayID, base, in.Guests, policy.StayLimits(), policy.ServiceFeeRate)

	// without the catalog the session still prices, it just offers no combos
	if combos, loadErr := s.quoter.LoadCombos(ctx, in.HomestayID); loadErr == nil {
		if pc, err = pricing.Reduce(pc, pricing.CombosLoaded{Combos: combos}); err != nil {
			return nil, shared.MapDomainError(err)
		}
	}

	if err := s.store.Create(ctx, pc); err != nil {
		return nil, shared.MapDomainError(err)
	}
	s.logger.InfoContext(ctx, "pricing session created",
		slog.String("session_id", pc.ID), slog.Int64("homestay_id", pc.HomestayID))

	if in.CheckIn == "" && in.CheckOut == "" {
		return &pc, nil
	}
	return s.ChangeDates(ctx, pc.ID, in.CheckIn, in.CheckOut)
}

// ChangeDates records the new dates, prices them and stores the price only if
// no newer date change arrived in the meantime.
func (s *sessionCommandsImpl) ChangeDates(ctx context.Context, id, checkIn, checkOut string) (*pricing.Context, error) {
	pc, err := s.update(ctx, id, pricing.DatesChanged{CheckIn: checkIn, CheckOut: checkOut})
	if err != nil {
		return nil, err
	}
	if !pc.AwaitingPrice() {
		return pc, nil
	}
	priced, err := s.resolvePrice(ctx, *pc)
	if err != nil {
		return nil, err
	}
	// notices raised by the date change itself belong to this response too
	priced.Notices = append(append([]string{}, pc.Notices...), priced.Notices...)
	return priced, nil
}

func (s *sessionCommandsImpl) resolvePrice(ctx context.Context, pc pricing.Context) (*pricing.Context, error) {
	result, err := s.calculator.ComputeNightlyBreakdown(ctx, pc.HomestayID, *pc.Interval, pc.BasePrice)
	if err != nil {
		return nil, shared.MapDomainError(err)
	}

	next, err := s.update(ctx, pc.ID, pricing.PriceResolved{PriceRevision: pc.PriceRevision, Result: result})
	if err == nil {
		return next, nil
	}
	if !errs.Is(err, errs.ErrSessionConflict) {
		return nil, err
	}

	s.logger.WarnContext(ctx, "discarding superseded price",
		slog.String("session_id", pc.ID),
		slog.Uint64("price_revision", pc.PriceRevision))
	latest, getErr := s.store.Get(ctx, pc.ID)
	if getErr != nil {
		return nil, s.storeError(getErr)
	}
	return &latest, nil
}

func (s *sessionCommandsImpl) ChangeGuests(ctx context.Context, id string, guests int) (*pricing.Context, error) {
	return s.update(ctx, id, pricing.GuestsChanged{Guests: guests})
}

func (s *sessionCommandsImpl) SelectCombo(ctx context.Context, id string, comboID int64) (*pricing.Context, error) {
	pc, err := s.store.Update(ctx, id, func(current pricing.Context) (pricing.Context, error) {
		return pricing.Reduce(current, pricing.ComboSelected{ComboID: comboID})
	})
	if err != nil {
		if errors.Is(err, pricing.ErrComboNotOffered) {
			return nil, s.quoter.ComboSelectionError(ctx, comboID, err)
		}
		return nil, s.storeError(err)
	}
	return &pc, nil
}

func (s *sessionCommandsImpl) ClearCombo(ctx context.Context, id string) (*pricing.Context, error) {
	return s.update(ctx, id, pricing.ComboCleared{})
}

// ApplyCoupon validates the code against the session's current subtotal and
// binds the result to the revision it was validated at.
func (s *sessionCommandsImpl) ApplyCoupon(ctx context.Context, id, code string, userID *int64) (*pricing.Context, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, s.storeError(err)
	}
	basis, err := current.CouponBasis()
	if err != nil {
		return nil, shared.MapDomainError(err)
	}

	v, err := s.coupons.Validate(ctx, code, basis.Subtotal, current.HomestayID, userID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.logger.InfoContext(ctx, "coupon not applied",
			slog.String("session_id", id), slog.Any("error", err))
		return nil, shared.MapDomainError(err)
	}

	return s.update(ctx, id, pricing.CouponApplied{Revision: current.Revision, Validation: v})
}

func (s *sessionCommandsImpl) RemoveCoupon(ctx context.Context, id string) (*pricing.Context, error) {
	return s.update(ctx, id, pricing.CouponRemoved{})
}

func (s *sessionCommandsImpl) update(ctx context.Context, id string, ev pricing.Event) (*pricing.Context, error) {
	pc, err := s.store.Update(ctx, id, func(current pricing.Context) (pricing.Context, error) {
		return pricing.Reduce(current, ev)
	})
	if err != nil {
		return nil, s.storeError(err)
	}
	if len(pc.Notices) > 0 {
		s.logger.InfoContext(ctx, "pricing session adjusted",
			slog.String("session_id", id),
			slog.Uint64("revision", pc.Revision),
			slog.Any("notices", pc.Notices))
	}
	return &pc, nil
}

func (s *sessionCommandsImpl) storeError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrSessionNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrSessionConflict)
	default:
		return shared.MapDomainError(err)
	}
}
