//go:build unit

package payment_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"homestay-pricing/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedSource struct {
	mu       sync.Mutex
	statuses []payment.Status
	errs     map[int]error
	calls    int
}

func (s *scriptedSource) PaymentStatus(_ context.Context, _ payment.Provider, id int64) (payment.StatusReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	call := s.calls
	s.calls++
	if err, ok := s.errs[call]; ok {
		return payment.StatusReport{}, err
	}
	idx := call
	if idx >= len(s.statuses) {
		idx = len(s.statuses) - 1
	}
	return payment.StatusReport{PaymentID: id, Status: s.statuses[idx]}, nil
}

func TestPoller_Run(t *testing.T) {
	const interval = 5 * time.Millisecond

	t.Run("stops on paid and reports each change once", func(t *testing.T) {
		src := &scriptedSource{statuses: []payment.Status{payment.StatusPending, payment.StatusPending, payment.StatusPaid}}
		poller := payment.NewPoller(src, interval, time.Second)

		var seen []payment.Status
		res, err := poller.Run(context.Background(), payment.ProviderMoMo, 12, func(r payment.StatusReport) {
			seen = append(seen, r.Status)
		})
		require.NoError(t, err)

		assert.Equal(t, payment.OutcomePaid, res.Outcome)
		assert.Equal(t, 3, res.Polls)
		assert.Equal(t, []payment.Status{payment.StatusPending, payment.StatusPaid}, seen)
		assert.Equal(t, int64(12), res.Last.PaymentID)
	})

	t.Run("stops on failed", func(t *testing.T) {
		src := &scriptedSource{statuses: []payment.Status{payment.StatusFailed}}
		poller := payment.NewPoller(src, interval, time.Second)

		res, err := poller.Run(context.Background(), payment.ProviderVNPay, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, payment.OutcomeFailed, res.Outcome)
		assert.Equal(t, 1, res.Polls)
	})

	t.Run("transient errors keep polling", func(t *testing.T) {
		src := &scriptedSource{
			statuses: []payment.Status{payment.StatusPending, payment.StatusPending, payment.StatusPaid},
			errs:     map[int]error{0: errors.New("502"), 1: errors.New("502")},
		}
		poller := payment.NewPoller(src, interval, time.Second)

		res, err := poller.Run(context.Background(), payment.ProviderMoMo, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, payment.OutcomePaid, res.Outcome)
		assert.Equal(t, 2, res.Errors)
	})

	t.Run("times out while pending", func(t *testing.T) {
		src := &scriptedSource{statuses: []payment.Status{payment.StatusPending}}
		poller := payment.NewPoller(src, interval, 30*time.Millisecond)

		res, err := poller.Run(context.Background(), payment.ProviderMoMo, 1, nil)
		assert.ErrorIs(t, err, payment.ErrPollTimeout)
		assert.Equal(t, payment.OutcomeTimedOut, res.Outcome)
	})

	t.Run("cancellation stops polling", func(t *testing.T) {
		src := &scriptedSource{statuses: []payment.Status{payment.StatusPending}}
		poller := payment.NewPoller(src, interval, time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
		defer cancel()

		res, err := poller.Run(ctx, payment.ProviderMoMo, 1, nil)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, payment.OutcomeCancelled, res.Outcome)

		src.mu.Lock()
		calls := src.calls
		src.mu.Unlock()
		time.Sleep(4 * interval)
		src.mu.Lock()
		defer src.mu.Unlock()
		assert.Equal(t, calls, src.calls, "no polls after Run returned")
	})
}

func TestNewProvider(t *testing.T) {
	p, err := payment.NewProvider("MoMo")
	require.NoError(t, err)
	assert.Equal(t, payment.ProviderMoMo, p)

	_, err = payment.NewProvider("paypal")
	assert.ErrorIs(t, err, payment.ErrUnknownProvider)
}
