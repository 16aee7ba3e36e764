package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"homestay-pricing/internal/handler/api"
	"homestay-pricing/internal/handler/middleware"
	"homestay-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Pricing      *api.PricingHandler
	Coupon       *api.CouponHandler
	Session      *api.SessionHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Payment      *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger, time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset)))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Anonymous guests can price a stay; a token only adds per-user coupon checks.
		public := apiGroup.Group("")
		public.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Pricing.Quote},
				{Method: http.MethodPost, Path: "/pricing/dynamic", Handler: h.Pricing.Dynamic},
				{Method: http.MethodGet, Path: "/combos", Handler: h.Pricing.Combos},
				{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Coupon.Validate},
				{Method: http.MethodGet, Path: "/availability/:homestayId", Handler: h.Availability.Month},
			})

			sessions := public.Group("/pricing/sessions")
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Session.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Session.Get},
				{Method: http.MethodPut, Path: "/:id/dates", Handler: h.Session.ChangeDates},
				{Method: http.MethodPut, Path: "/:id/guests", Handler: h.Session.ChangeGuests},
				{Method: http.MethodPut, Path: "/:id/combo", Handler: h.Session.SelectCombo},
				{Method: http.MethodDelete, Path: "/:id/combo", Handler: h.Session.ClearCombo},
				{Method: http.MethodPut, Path: "/:id/coupon", Handler: h.Session.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/:id/coupon", Handler: h.Session.RemoveCoupon},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Submit},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/:provider/:paymentId/events", Handler: h.Payment.Events},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
