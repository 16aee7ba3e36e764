package api

import (
	"net/http"
	"strconv"

	"homestay-pricing/internal/domain/payment"
	resdto "homestay-pricing/internal/handler/dto/response"
	"homestay-pricing/internal/handler/httperr"
	"homestay-pricing/internal/handler/middleware"
	"homestay-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	eventStatus  = "status"
	eventOutcome = "outcome"
)

type PaymentHandler struct {
	q queries.PaymentQueries
}

func NewPaymentHandler(q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{q: q}
}

// @Summary Payment status events
// @Description Server-sent events: a "status" event per status change and a final "outcome" event
// @Tags payments
// @Produce text/event-stream
// @Security BearerAuth
// @Param provider path string true "Payment provider (vnpay, momo)"
// @Param paymentId path int true "Payment ID"
// @Success 200 {object} resdto.PaymentOutcomeEvent
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/payments/{provider}/{paymentId}/events [get]
func (h *PaymentHandler) Events(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("paymentId"), 10, 64)
	if err != nil || paymentID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidParam("paymentId"), "Invalid payment ID", nil)
		return
	}

	in := queries.WatchPaymentInput{
		Provider:  c.Param("provider"),
		PaymentID: paymentID,
		Token:     middleware.GetAccessToken(c),
	}

	streaming := false
	startStream := func() {
		if streaming {
			return
		}
		streaming = true
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
		c.Status(http.StatusOK)
	}
	send := func(event string, data any) {
		startStream()
		c.SSEvent(event, data)
		c.Writer.Flush()
	}

	result, err := h.q.Watch(c.Request.Context(), in, func(report payment.StatusReport) {
		send(eventStatus, resdto.FromPaymentStatus(report))
	})
	if err != nil {
		if !streaming {
			respondError(c, err)
			return
		}
		// The client went away mid-stream; there is nobody left to tell.
		_ = c.Error(err)
		return
	}
	send(eventOutcome, resdto.FromPaymentResult(result))
}
