package api

import (
	"net/http"
	"strings"

	reqdto "homestay-pricing/internal/handler/dto/request"
	resdto "homestay-pricing/internal/handler/dto/response"
	"homestay-pricing/internal/handler/middleware"
	"homestay-pricing/internal/pkg/errs"
	"homestay-pricing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyHeader    = "Idempotency-Key"
	maxIdempotencyKeyLen = 128
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Submit booking
// @Description Re-price the stay and submit it to the reservations service exactly once per Idempotency-Key
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed response"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	key := strings.TrimSpace(c.GetHeader(idempotencyHeader))
	if key == "" {
		respondError(c, errs.ErrIdempotencyKeyRequired)
		return
	}
	if len(key) > maxIdempotencyKeyLen {
		bindError(c, errs.Newf("%s must be at most %d characters", idempotencyHeader, maxIdempotencyKeyLen))
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		bindError(c, err)
		return
	}

	token := middleware.GetAccessToken(c)
	result, err := h.cmds.Submit(c.Request.Context(), req.ToInput(middleware.UserIDPtr(c), token), key)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBooking(result))
}
