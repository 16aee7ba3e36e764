package api

import (
	"net/http"
	"strconv"

	resdto "homestay-pricing/internal/handler/dto/response"
	"homestay-pricing/internal/handler/httperr"
	"homestay-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Availability calendar
// @Description Day-by-day availability of a homestay for one month
// @Tags availability
// @Produce json
// @Param homestayId path int true "Homestay ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/availability/{homestayId} [get]
func (h *AvailabilityHandler) Month(c *gin.Context) {
	homestayID, err := strconv.ParseInt(c.Param("homestayId"), 10, 64)
	if err != nil || homestayID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidParam("homestayId"), "Invalid homestay ID", nil)
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidParam("year"), "Invalid year", nil)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidParam("month"), "Invalid month", nil)
		return
	}

	calendar, err := h.q.Month(c.Request.Context(), homestayID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(calendar))
}
