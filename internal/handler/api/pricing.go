package api

import (
	"net/http"

	reqdto "homestay-pricing/internal/handler/dto/request"
	resdto "homestay-pricing/internal/handler/dto/response"
	"homestay-pricing/internal/handler/middleware"
	"homestay-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Quote a stay
// @Description Price a stay with optional combo and coupon in one call
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		bindError(c, err)
		return
	}

	quote, err := h.q.Quote(c.Request.Context(), req.ToInput(middleware.UserIDPtr(c)))
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromQuote(quote, req.CouponCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Nightly price breakdown
// @Description Compute the per-night dynamic price for a stay
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.DynamicPriceRequest true "Dynamic price request"
// @Success 200 {object} resdto.DynamicPriceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/pricing/dynamic [post]
func (h *PricingHandler) Dynamic(c *gin.Context) {
	var req reqdto.DynamicPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.q.Dynamic(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDynamicPrice(*result))
}

// @Summary List combos
// @Description List active combo packages, narrowed to the stay when dates are given
// @Tags combos
// @Produce json
// @Param homestayId query int false "Homestay ID"
// @Param checkIn query string false "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string false "Check-out date (YYYY-MM-DD)"
// @Param minNights query int false "Minimum nights"
// @Param includesBreakfast query bool false "Only combos with breakfast"
// @Success 200 {array} resdto.ComboResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/combos [get]
func (h *PricingHandler) Combos(c *gin.Context) {
	var query reqdto.ComboListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	if err := query.Validate(); err != nil {
		bindError(c, err)
		return
	}

	combos, err := h.q.EligibleCombos(c.Request.Context(), query.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromCombos(combos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
