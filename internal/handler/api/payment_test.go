//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"homestay-pricing/internal/domain/payment"
	"homestay-pricing/internal/handler/api"
	resdto "homestay-pricing/internal/handler/dto/response"
	"homestay-pricing/internal/pkg/errs"
	"homestay-pricing/internal/usecase/queries"
	"homestay-pricing/tests/common/httptest"
	queriesmock "homestay-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPaymentQueries
	token       string
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	handler := api.NewPaymentHandler(s.mockQueries)

	auth, tokens := newTestAuth(s.T())
	s.token = tokens.GenerateToken(s.T(), 77, "guest@example.com")

	s.router.GET("/api/payments/:provider/:paymentId/events", auth.RequireAuth(), handler.Events)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestEvents() {
	s.Run("success: streams each status change then the outcome", func() {
		pending := payment.StatusReport{PaymentID: 555, Status: payment.StatusPending, Amount: 1_100_000}
		paid := payment.StatusReport{PaymentID: 555, Status: payment.StatusPaid, Amount: 1_100_000, TransactionID: "TX-1"}

		s.mockQueries.EXPECT().Watch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in queries.WatchPaymentInput, onChange func(payment.StatusReport)) (*payment.Result, error) {
				s.Equal("vnpay", in.Provider)
				s.Equal(int64(555), in.PaymentID)
				s.Equal(s.token, in.Token)
				onChange(pending)
				onChange(paid)
				return &payment.Result{Outcome: payment.OutcomePaid, Last: &paid, Polls: 3}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/vnpay/555/events", nil, s.token)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertEventStream(s.T(), rec)

		events := httptest.ParseEvents(s.T(), rec.Body.String())
		s.Require().Len(events, 3)
		s.Equal("status", events[0].Name)
		s.Equal("status", events[1].Name)
		s.Equal("outcome", events[2].Name)

		var outcome resdto.PaymentOutcomeEvent
		s.Require().NoError(json.Unmarshal([]byte(events[2].Data), &outcome))
		s.Equal("paid", outcome.Outcome)
		s.Equal(3, outcome.Polls)
		s.Require().NotNil(outcome.Last)
		s.Equal("TX-1", outcome.Last.TransactionID)
	})

	s.Run("success: a closed poll window is an outcome, not an error", func() {
		s.mockQueries.EXPECT().Watch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&payment.Result{Outcome: payment.OutcomeTimedOut, Polls: 10, Errors: 2}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/momo/555/events", nil, s.token)

		s.Equal(http.StatusOK, rec.Code)
		events := httptest.ParseEvents(s.T(), rec.Body.String())
		s.Require().Len(events, 1)
		s.Contains(events[0].Data, `"outcome":"timeout"`)
	})

	s.Run("error: unknown provider before streaming", func() {
		s.mockQueries.EXPECT().Watch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(payment.ErrUnknownProvider, errs.ErrUnknownPaymentProvider))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/paypal/555/events", nil, s.token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "unknown_payment_provider")
	})

	s.Run("error: invalid payment id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/vnpay/zero/events", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment ID")
	})

	s.Run("error: requires a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/vnpay/555/events", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
