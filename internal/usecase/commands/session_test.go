//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/pkg/clock"
	"homestay-pricing/internal/pkg/errs"
	"homestay-pricing/internal/usecase/commands"
	"homestay-pricing/internal/usecase/shared"
	sharedmock "homestay-pricing/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// memoryStore keeps sessions in a map and applies updates under a lock.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]pricing.Context
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]pricing.Context{}}
}

func (s *memoryStore) Create(_ context.Context, pc pricing.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[pc.ID]; ok {
		return infra.RepositoryError{Kind: infra.KindConflict}
	}
	s.sessions[pc.ID] = pc
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (pricing.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pc, ok := s.sessions[id]
	if !ok {
		return pricing.Context{}, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	return pc, nil
}

func (s *memoryStore) Update(_ context.Context, id string, fn func(pricing.Context) (pricing.Context, error)) (pricing.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pc, ok := s.sessions[id]
	if !ok {
		return pricing.Context{}, infra.RepositoryError{Kind: infra.KindNotFound}
	}
	next, err := fn(pc)
	if err != nil {
		return pricing.Context{}, err
	}
	s.sessions[id] = next
	return next, nil
}

type useCaseMocks struct {
	homestays  *sharedmock.MockHomestayCatalog
	combos     *sharedmock.MockComboCatalog
	calculator *sharedmock.MockPriceCalculator
	coupons    *sharedmock.MockCouponChecker
}

func newUseCaseMocks(t *testing.T) (*shared.Quoter, useCaseMocks) {
	ctrl := gomock.NewController(t)
	m := useCaseMocks{
		homestays:  sharedmock.NewMockHomestayCatalog(ctrl),
		combos:     sharedmock.NewMockComboCatalog(ctrl),
		calculator: sharedmock.NewMockPriceCalculator(ctrl),
		coupons:    sharedmock.NewMockCouponChecker(ctrl),
	}
	policy := shared.PricingPolicy{ServiceFeeRate: decimal.RequireFromString("0.10"), MinStay: 1}
	now := clock.NewMockClock(time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC))
	return shared.NewQuoter(m.homestays, m.combos, m.calculator, m.coupons, policy, now, discardLogger), m
}

func flatPrice(_ context.Context, homestayID int64, iv stay.Interval, base money.VND) (pricing.DynamicPriceResult, error) {
	result, err := pricing.Fallback(homestayID, iv, base, "")
	if err != nil {
		return pricing.DynamicPriceResult{}, err
	}
	result.Fallback = false
	result.Warnings = nil
	return result, nil
}

func TestSessionCommands(t *testing.T) {
	ctx := context.Background()
	base := money.VND(1_000_000)

	newSession := func(t *testing.T) (commands.SessionCommands, *memoryStore, useCaseMocks) {
		quoter, m := newUseCaseMocks(t)
		store := newMemoryStore()
		return commands.NewSessionCommands(store, quoter, m.calculator, m.coupons, discardLogger), store, m
	}

	t.Run("success: create with dates prices the stay", func(t *testing.T) {
		cmds, _, m := newSession(t)
		m.combos.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return([]combo.Package{}, nil)
		m.calculator.EXPECT().ComputeNightlyBreakdown(gomock.Any(), int64(7), gomock.Any(), base).DoAndReturn(flatPrice)

		pc, err := cmds.Create(ctx, commands.CreateSessionInput{
			HomestayID: 7, Guests: 2, BasePrice: &base, CheckIn: "2025-12-20", CheckOut: "2025-12-22",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, pc.ID)
		assert.Equal(t, pricing.StatePricingComputed, pc.State)
		require.NotNil(t, pc.Breakdown)
		assert.Equal(t, money.VND(2_200_000), pc.Breakdown.Total)
	})

	t.Run("success: invalid dates are kept on the session", func(t *testing.T) {
		cmds, _, m := newSession(t)
		m.combos.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		pc, err := cmds.Create(ctx, commands.CreateSessionInput{
			HomestayID: 7, Guests: 1, BasePrice: &base, CheckIn: "2025-12-22", CheckOut: "2025-12-20",
		})

		require.NoError(t, err)
		assert.Equal(t, pricing.StateDatesInvalid, pc.State)
		assert.NotEmpty(t, pc.DateError)
		assert.Nil(t, pc.Breakdown)
	})

	t.Run("success: superseded price is discarded", func(t *testing.T) {
		cmds, store, m := newSession(t)
		m.combos.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		pc, err := cmds.Create(ctx, commands.CreateSessionInput{HomestayID: 7, Guests: 1, BasePrice: &base})
		require.NoError(t, err)

		// a second date change lands while the first price is being computed
		m.calculator.EXPECT().ComputeNightlyBreakdown(gomock.Any(), int64(7), gomock.Any(), base).
			DoAndReturn(func(ctx context.Context, id int64, iv stay.Interval, b money.VND) (pricing.DynamicPriceResult, error) {
				_, updErr := store.Update(ctx, pc.ID, func(cur pricing.Context) (pricing.Context, error) {
					return pricing.Reduce(cur, pricing.DatesChanged{CheckIn: "2025-12-24", CheckOut: "2025-12-27"})
				})
				require.NoError(t, updErr)
				return flatPrice(ctx, id, iv, b)
			})

		got, err := cmds.ChangeDates(ctx, pc.ID, "2025-12-20", "2025-12-21")

		require.NoError(t, err)
		assert.Equal(t, "2025-12-24", got.CheckIn)
		assert.Nil(t, got.Dynamic)
		assert.True(t, got.AwaitingPrice())
	})

	t.Run("success: coupon removed when guests change", func(t *testing.T) {
		cmds, _, m := newSession(t)
		m.combos.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.calculator.EXPECT().ComputeNightlyBreakdown(gomock.Any(), int64(7), gomock.Any(), base).DoAndReturn(flatPrice)
		m.coupons.EXPECT().Validate(ctx, "SUMMER", money.VND(1_100_000), int64(7), nil).
			Return(coupon.Validation{Valid: true, Code: "SUMMER", DiscountAmount: 100_000}, nil)

		pc, err := cmds.Create(ctx, commands.CreateSessionInput{
			HomestayID: 7, Guests: 1, BasePrice: &base, CheckIn: "2025-12-20", CheckOut: "2025-12-21",
		})
		require.NoError(t, err)

		withCoupon, err := cmds.ApplyCoupon(ctx, pc.ID, "SUMMER", nil)
		require.NoError(t, err)
		assert.Equal(t, pricing.StateCouponApplied, withCoupon.State)
		assert.Equal(t, money.VND(1_000_000), withCoupon.Breakdown.Total)

		moreGuests, err := cmds.ChangeGuests(ctx, pc.ID, 3)
		require.NoError(t, err)
		assert.Nil(t, moreGuests.Coupon)
		assert.Contains(t, moreGuests.Notices, pricing.NoticeCouponRemoved)
		assert.Equal(t, money.VND(1_100_000), moreGuests.Breakdown.Total)
	})

	t.Run("success: coupon removal notice survives the new price", func(t *testing.T) {
		cmds, _, m := newSession(t)
		m.combos.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.calculator.EXPECT().ComputeNightlyBreakdown(gomock.Any(), int64(7), gomock.Any(), base).DoAndReturn(flatPrice).Times(2)
		m.coupons.EXPECT().Validate(ctx, "SUMMER", money.VND(1_100_000), int64(7), nil).
			Return(coupon.Validation{Valid: true, Code: "SUMMER", DiscountAmount: 100_000}, nil)

		pc, err := cmds.Create(ctx, commands.CreateSessionInput{
			HomestayID: 7, Guests: 1, BasePrice: &base, CheckIn: "2025-12-20", CheckOut: "2025-12-21",
		})
		require.NoError(t, err)
		_, err = cmds.ApplyCoupon(ctx, pc.ID, "SUMMER", nil)
		require.NoError(t, err)

		moved, err := cmds.ChangeDates(ctx, pc.ID, "2025-12-20", "2025-12-22")

		require.NoError(t, err)
		assert.Nil(t, moved.Coupon)
		assert.Equal(t, []string{pricing.NoticeCouponRemoved}, moved.Notices)
		require.NotNil(t, moved.Breakdown)
	})

	t.Run("failure: coupon before dates", func(t *testing.T) {
		cmds, _, m := newSession(t)
		m.combos.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		pc, err := cmds.Create(ctx, commands.CreateSessionInput{HomestayID: 7, Guests: 1, BasePrice: &base})
		require.NoError(t, err)

		_, err = cmds.ApplyCoupon(ctx, pc.ID, "SUMMER", nil)

		assert.True(t, errs.Is(err, errs.ErrInvalidStay))
	})

	t.Run("failure: rejected coupon", func(t *testing.T) {
		cmds, _, m := newSession(t)
		m.combos.EXPECT().List(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.calculator.EXPECT().ComputeNightlyBreakdown(gomock.Any(), int64(7), gomock.Any(), base).DoAndReturn(flatPrice)
		m.coupons.EXPECT().Validate(ctx, "OLD", gomock.Any(), int64(7), nil).
			Return(coupon.Validation{}, &coupon.RejectedError{Reason: "Mã khuyến mãi đã hết hạn"})

		pc, err := cmds.Create(ctx, commands.CreateSessionInput{
			HomestayID: 7, Guests: 1, BasePrice: &base, CheckIn: "2025-12-20", CheckOut: "2025-12-21",
		})
		require.NoError(t, err)

		_, err = cmds.ApplyCoupon(ctx, pc.ID, "OLD", nil)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidCoupon))
		assert.Equal(t, "Mã khuyến mãi đã hết hạn", err.Error())
	})

	t.Run("failure: unknown session", func(t *testing.T) {
		cmds, _, _ := newSession(t)

		_, err := cmds.ClearCombo(ctx, "missing")

		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
	})
}
