//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"homestay-pricing/internal/handler/dto/response"
	"homestay-pricing/tests/common/authtest"
	"homestay-pricing/tests/common/builder"
	"homestay-pricing/tests/common/httptest"
	"homestay-pricing/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/api/bookings"
	paymentEventsURL = "/api/payments/%s/%d/events"

	homestayID int64 = 42
	guestID    int64 = 7
)

type BookingSuite struct {
	e2e.SharedSuite
	token string
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), guestID, "guest@example.com")
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.Upstream.SetPrice(homestayID, 500_000)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) submit(t *testing.T, body any, key string) (int, response.BookingResponse, string) {
	t.Helper()

	headers := map[string]string{}
	if key != "" {
		headers["Idempotency-Key"] = key
	}
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, headers, s.token)

	var got response.BookingResponse
	if w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	}
	return w.Code, got, w.Body.String()
}

// =============================================================================
// TestSubmitBooking - priced booking submission
// =============================================================================

func (s *BookingSuite) TestSubmitBooking() {
	s.Run("Normal case: booking is priced server-side and forwarded", func() {
		t := s.T()

		reqBody := builder.NewStayBuilder().BuildBookingRequestDTO()
		status, got, raw := s.submit(t, reqBody, uuid.NewString())

		require.Equal(t, http.StatusCreated, status, raw)
		assert.NotEmpty(t, got.BookingCode)
		assert.Equal(t, int64(1_100_000), got.TotalPrice.Value)
		assert.True(t, got.RequiresPolling)
		assert.False(t, got.Replayed)

		forwarded := s.Upstream.Bookings()
		require.Len(t, forwarded, 1)
		assert.EqualValues(t, 1_100_000, forwarded[0]["total_price"])
		assert.EqualValues(t, 1_100_000, forwarded[0]["original_price"])
		assert.Equal(t, "vnpay", forwarded[0]["payment_method"])
	})

	s.Run("Normal case: same key and body replays the first result", func() {
		t := s.T()

		key := uuid.NewString()
		reqBody := builder.NewStayBuilder().BuildBookingRequestDTO()

		firstStatus, first, raw := s.submit(t, reqBody, key)
		require.Equal(t, http.StatusCreated, firstStatus, raw)

		secondStatus, second, raw := s.submit(t, reqBody, key)
		require.Equal(t, http.StatusOK, secondStatus, raw)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.BookingCode, second.BookingCode)
		assert.Len(t, s.Upstream.Bookings(), 1, "replay must not create a second booking")
	})

	s.Run("Error case: same key with a different body", func() {
		t := s.T()

		key := uuid.NewString()
		status, _, raw := s.submit(t, builder.NewStayBuilder().BuildBookingRequestDTO(), key)
		require.Equal(t, http.StatusCreated, status, raw)

		changed := builder.NewStayBuilder().With(func(b *builder.StayBuilder) { b.Guests = 3 }).BuildBookingRequestDTO()
		status, _, _ = s.submit(t, changed, key)
		assert.Equal(t, http.StatusConflict, status)
	})

	s.Run("Error case: missing idempotency key", func() {
		t := s.T()

		status, _, _ := s.submit(t, builder.NewStayBuilder().BuildBookingRequestDTO(), "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Empty(t, s.Upstream.Bookings())
	})

	s.Run("Error case: a night in the stay is already booked", func() {
		t := s.T()
		s.Upstream.SetDayStatus("2026-03-10", "booked")

		status, _, raw := s.submit(t, builder.NewStayBuilder().BuildBookingRequestDTO(), uuid.NewString())
		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, raw, "2026-03-10")
		assert.Empty(t, s.Upstream.Bookings())
	})

	s.Run("Error case: price moved since the client's quote", func() {
		t := s.T()

		expected := int64(1_000_000)
		reqBody := builder.NewStayBuilder().BuildBookingRequestDTO()
		reqBody.ExpectedTotal = &expected

		status, _, _ := s.submit(t, reqBody, uuid.NewString())
		assert.Equal(t, http.StatusConflict, status)
		assert.Empty(t, s.Upstream.Bookings())
	})

	s.Run("Error case: backend rejects the booking", func() {
		t := s.T()
		s.Upstream.RejectBookings("Homestay is not accepting bookings")

		status, _, raw := s.submit(t, builder.NewStayBuilder().BuildBookingRequestDTO(), uuid.NewString())
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, raw, "not accepting bookings")
	})

	s.Run("Error case: anonymous caller", func() {
		t := s.T()

		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			builder.NewStayBuilder().BuildBookingRequestDTO(), headers, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestPaymentEvents - payment status stream
// =============================================================================

func (s *BookingSuite) TestPaymentEvents() {
	s.Run("Normal case: pending then paid ends with a paid outcome", func() {
		t := s.T()
		s.Upstream.SetPaymentStatuses("pending", "pending", "paid")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(paymentEventsURL, "vnpay", 6001), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertEventStream(t, w)

		events := httptest.ParseEvents(t, w.Body.String())
		require.Len(t, events, 3)
		assert.Equal(t, "status", events[0].Name)
		assert.Equal(t, "status", events[1].Name)
		assert.Equal(t, "outcome", events[2].Name)

		var outcome response.PaymentOutcomeEvent
		require.NoError(t, json.Unmarshal([]byte(events[2].Data), &outcome))
		assert.Equal(t, "paid", outcome.Outcome)
		require.NotNil(t, outcome.Last)
		assert.Equal(t, "TX6001", outcome.Last.TransactionID)
	})

	s.Run("Error case: unsupported provider", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(paymentEventsURL, "paypal", 6001), nil, s.token)
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "unknown_payment_provider")
	})
}
