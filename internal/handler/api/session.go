package api

import (
	"net/http"

	"homestay-pricing/internal/domain/pricing"
	reqdto "homestay-pricing/internal/handler/dto/request"
	resdto "homestay-pricing/internal/handler/dto/response"
	"homestay-pricing/internal/handler/middleware"
	"homestay-pricing/internal/usecase/commands"
	"homestay-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.SessionCommands
	q    queries.SessionQueries
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q}
}

// @Summary Start pricing session
// @Description Open a server-held pricing context for one homestay
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSessionRequest true "Session request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/pricing/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req reqdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		bindError(c, err)
		return
	}

	pc, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	h.respond(c, http.StatusCreated, pc, err)
}

// @Summary Get pricing session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/pricing/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	pc, err := h.q.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, pc, err)
}

// @Summary Change stay dates
// @Description Invalid dates are kept on the session and reported in dateError
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SessionDatesRequest true "Dates"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/pricing/sessions/{id}/dates [put]
func (h *SessionHandler) ChangeDates(c *gin.Context) {
	var req reqdto.SessionDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	pc, err := h.cmds.ChangeDates(c.Request.Context(), c.Param("id"), req.CheckIn, req.CheckOut)
	h.respond(c, http.StatusOK, pc, err)
}

// @Summary Change guest count
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SessionGuestsRequest true "Guests"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/pricing/sessions/{id}/guests [put]
func (h *SessionHandler) ChangeGuests(c *gin.Context) {
	var req reqdto.SessionGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		bindError(c, err)
		return
	}

	pc, err := h.cmds.ChangeGuests(c.Request.Context(), c.Param("id"), req.Guests)
	h.respond(c, http.StatusOK, pc, err)
}

// @Summary Select combo
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SessionComboRequest true "Combo"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/pricing/sessions/{id}/combo [put]
func (h *SessionHandler) SelectCombo(c *gin.Context) {
	var req reqdto.SessionComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		bindError(c, err)
		return
	}

	pc, err := h.cmds.SelectCombo(c.Request.Context(), c.Param("id"), req.ComboID)
	h.respond(c, http.StatusOK, pc, err)
}

// @Summary Clear combo
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/pricing/sessions/{id}/combo [delete]
func (h *SessionHandler) ClearCombo(c *gin.Context) {
	pc, err := h.cmds.ClearCombo(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, pc, err)
}

// @Summary Apply coupon
// @Description Rejections carry the promotion service's reason in detail
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SessionCouponRequest true "Coupon"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/pricing/sessions/{id}/coupon [put]
func (h *SessionHandler) ApplyCoupon(c *gin.Context) {
	var req reqdto.SessionCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		bindError(c, err)
		return
	}

	pc, err := h.cmds.ApplyCoupon(c.Request.Context(), c.Param("id"), req.Code, middleware.UserIDPtr(c))
	h.respond(c, http.StatusOK, pc, err)
}

// @Summary Remove coupon
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/pricing/sessions/{id}/coupon [delete]
func (h *SessionHandler) RemoveCoupon(c *gin.Context) {
	pc, err := h.cmds.RemoveCoupon(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, pc, err)
}

func (h *SessionHandler) respond(c *gin.Context, status int, pc *pricing.Context, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromSession(pc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, res)
}
