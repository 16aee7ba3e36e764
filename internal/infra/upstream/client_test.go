//go:build unit

package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homestay-pricing/internal/domain/availability"
	"homestay-pricing/internal/domain/booking"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/payment"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/infra/upstream"
	"homestay-pricing/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}, logger)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestPricePerNight(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/homestays/7", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "price_per_night": 850000.0})
	})

	got, err := client.PricePerNight(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, money.VND(850_000), got)
}

func TestPricePerNight_OutOfRange(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "price_per_night": 80000000000000000000}`))
	})

	got, err := client.PricePerNight(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	assert.ErrorIs(t, err, money.ErrOutOfRange)
	assert.Equal(t, money.Zero, got)
}

func TestPricePerNight_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Homestay không tồn tại"})
	})

	_, err := client.PricePerNight(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestCouponService_Validate(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		body       any
		assertFunc func(t *testing.T, v coupon.Validation, err error)
	}{
		{
			name:   "success: discount decoded",
			status: http.StatusOK,
			body: map[string]any{
				"valid": true, "promotion_id": 12, "code": "SUMMER",
				"discount_amount": 300000.0, "final_amount": 3000000.0, "message": "Giảm 300,000đ",
			},
			assertFunc: func(t *testing.T, v coupon.Validation, err error) {
				require.NoError(t, err)
				assert.True(t, v.Valid)
				assert.Equal(t, money.VND(300_000), v.DiscountAmount)
				require.NotNil(t, v.PromotionID)
				assert.Equal(t, int64(12), *v.PromotionID)
				assert.Equal(t, "Giảm 300,000đ", v.Message)
			},
		},
		{
			name:   "rejected: 400 detail passed through verbatim",
			status: http.StatusBadRequest,
			body:   map[string]any{"detail": "Mã khuyến mãi đã hết hạn"},
			assertFunc: func(t *testing.T, _ coupon.Validation, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, coupon.ErrInvalidCoupon)
				assert.Equal(t, "Mã khuyến mãi đã hết hạn", err.Error())
			},
		},
		{
			name:   "rejected: unknown code 404",
			status: http.StatusNotFound,
			body:   map[string]any{"detail": "Mã khuyến mãi không tồn tại"},
			assertFunc: func(t *testing.T, _ coupon.Validation, err error) {
				var rejected *coupon.RejectedError
				require.True(t, errors.As(err, &rejected))
				assert.Equal(t, "Mã khuyến mãi không tồn tại", rejected.Reason)
			},
		},
		{
			name:   "failure: 500 is not a rejection",
			status: http.StatusInternalServerError,
			body:   map[string]any{"detail": "boom"},
			assertFunc: func(t *testing.T, _ coupon.Validation, err error) {
				require.Error(t, err)
				assert.NotErrorIs(t, err, coupon.ErrInvalidCoupon)
				assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/promotions/validate", r.URL.Path)
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "SUMMER", body["code"])
				assert.EqualValues(t, 3_300_000, body["total_amount"])
				writeJSON(w, tc.status, tc.body)
			})
			svc := upstream.NewCouponService(client)

			v, err := svc.Validate(context.Background(), coupon.Request{Code: "SUMMER", Subtotal: 3_300_000, HomestayID: 7})
			tc.assertFunc(t, v, err)
		})
	}
}

func TestCouponService_Unreachable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, logger)

	_, err := upstream.NewCouponService(client).Validate(context.Background(), coupon.Request{Code: "X", Subtotal: 1})

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
}

func TestQuickAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/availability/quick/7", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		assert.Equal(t, "12", r.URL.Query().Get("month"))
		writeJSON(w, http.StatusOK, map[string]any{
			"month": 12, "year": 2025, "total_rooms": 3,
			"availability": map[string]any{
				"2025-12-02": map[string]any{"status": "booked", "color": "#f44336", "available_rooms": 0, "booked_rooms": 3, "pending_rooms": 0, "min_price": nil, "tooltip": "Trống: 0, Đặt: 3, Chờ: 0"},
				"2025-12-01": map[string]any{"status": "available", "color": "#4caf50", "available_rooms": 2, "booked_rooms": 1, "pending_rooms": 0, "min_price": 750000.0, "tooltip": "Trống: 2, Đặt: 1, Chờ: 0"},
				"bogus":      map[string]any{"status": "available"},
			},
		})
	})

	month, err := availability.NewMonth(2025, 12)
	require.NoError(t, err)
	cal, err := client.QuickAvailability(context.Background(), 7, month)

	require.NoError(t, err)
	assert.Equal(t, 3, cal.TotalRooms)
	require.Len(t, cal.Days, 2)
	assert.Equal(t, availability.StatusAvailable, cal.Days[0].Status)
	require.NotNil(t, cal.Days[0].MinPrice)
	assert.Equal(t, money.VND(750_000), *cal.Days[0].MinPrice)
	assert.Equal(t, availability.StatusBooked, cal.Days[1].Status)
	assert.Nil(t, cal.Days[1].MinPrice)
}

func TestSubmitBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-12-24", body["check_in"])
		assert.EqualValues(t, 2_600_000, body["total_price"])
		assert.Equal(t, "SUMMER", body["coupon_code"])
		assert.Equal(t, "momo", body["payment_method"])
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Đặt phòng thành công",
			"booking": map[string]any{
				"id": 55, "booking_code": "BK17000000001", "status": "pending",
				"check_in": "2025-12-24", "check_out": "2025-12-27", "total_price": 2600000.0,
			},
		})
	})

	iv, err := stay.Create("2025-12-24", "2025-12-27", 1)
	require.NoError(t, err)
	applied := coupon.Apply(coupon.Validation{Valid: true, Code: "SUMMER", DiscountAmount: 300_000}, coupon.Basis{Subtotal: 3_300_000})
	sub, err := booking.NewSubmission(7, nil, iv, 2,
		booking.GuestInfo{FullName: "Nguyen Van A", Email: "a@example.com", Phone: "0901234567"},
		booking.PaymentMoMo,
		&pricing.Breakdown{Subtotal: 3_300_000, DiscountAmount: 300_000, ComboDiscount: 400_000, Total: 2_600_000},
		&applied, nil)
	require.NoError(t, err)

	conf, err := client.SubmitBooking(context.Background(), "user-token", sub)

	require.NoError(t, err)
	assert.Equal(t, int64(55), conf.ID)
	assert.Equal(t, "BK17000000001", conf.BookingCode)
	assert.Equal(t, money.VND(2_600_000), conf.TotalPrice)
	assert.Equal(t, iv.CheckOut(), conf.CheckOut)
}

func TestSubmitBooking_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Lỗi tạo booking"})
	})
	iv, err := stay.Create("2025-12-24", "2025-12-25", 1)
	require.NoError(t, err)

	_, err = client.SubmitBooking(context.Background(), "", booking.Submission{Interval: iv})

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUpstreamRejected))
	rejection, ok := upstream.Rejection(err)
	require.True(t, ok)
	assert.Equal(t, "Lỗi tạo booking", rejection.Detail)
	var refused *booking.RejectedError
	require.True(t, errors.As(err, &refused))
	assert.Equal(t, "Lỗi tạo booking", refused.Reason)
}

func TestPaymentStatusSource(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/vnpay/status/9", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"payment_id": 9, "status": "paid", "amount": 2600000.0,
			"transaction_id": "TX1", "paid_at": "2025-12-01T10:00:00.123456", "booking_status": "confirmed",
		})
	})

	report, err := client.PaymentStatusSource("tok").PaymentStatus(context.Background(), payment.ProviderVNPay, 9)

	require.NoError(t, err)
	assert.Equal(t, payment.StatusPaid, report.Status)
	assert.Equal(t, money.VND(2_600_000), report.Amount)
	assert.Equal(t, "TX1", report.TransactionID)
	require.NotNil(t, report.PaidAt)
	assert.Equal(t, 10, report.PaidAt.Hour())
	assert.Equal(t, "confirmed", report.BookingStatus)
}

func TestClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.PricePerNight(ctx, 1)

	assert.ErrorIs(t, err, context.Canceled)
}
