package components

import (
	"homestay-pricing/internal/handler"
	"homestay-pricing/internal/handler/api"
	"homestay-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewCouponHandler,
		api.NewSessionHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	pricing *api.PricingHandler,
	coupon *api.CouponHandler,
	session *api.SessionHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Pricing:      pricing,
		Coupon:       coupon,
		Session:      session,
		Availability: availability,
		Booking:      booking,
		Payment:      payment,
	}
}
