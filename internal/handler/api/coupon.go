package api

import (
	"net/http"

	reqdto "homestay-pricing/internal/handler/dto/request"
	resdto "homestay-pricing/internal/handler/dto/response"
	"homestay-pricing/internal/handler/middleware"
	"homestay-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	q queries.CouponQueries
}

func NewCouponHandler(q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{q: q}
}

// @Summary Validate coupon
// @Description Check a coupon code against a subtotal without applying it
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CouponValidateRequest true "Coupon request"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.CouponValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		bindError(c, err)
		return
	}

	validation, err := h.q.Validate(c.Request.Context(), req.ToInput(middleware.UserIDPtr(c)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponValidation(validation))
}
