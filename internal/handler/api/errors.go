package api

import (
	"context"
	"errors"
	"net/http"

	"homestay-pricing/internal/domain/booking"
	"homestay-pricing/internal/domain/coupon"
	"homestay-pricing/internal/handler/httperr"
	"homestay-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError translates a use-case error into the public error response.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidStay):
		httperr.AbortWithCode(c, http.StatusBadRequest, "invalid_stay", err, "Invalid stay dates", err.Error())
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithCode(c, http.StatusBadRequest, "validation_failed", err, "Validation failed", err.Error())
	case errs.Is(err, errs.ErrUnknownPaymentProvider):
		httperr.AbortWithCode(c, http.StatusBadRequest, "unknown_payment_provider", err, "Unknown payment provider", nil)
	case errs.Is(err, errs.ErrIdempotencyKeyRequired):
		httperr.AbortWithCode(c, http.StatusBadRequest, "idempotency_key_required", err, "Idempotency-Key header is required", nil)

	case errs.Is(err, errs.ErrHomestayNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, "homestay_not_found", err, "Homestay not found", nil)
	case errs.Is(err, errs.ErrComboNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, "combo_not_found", err, "Combo not found", nil)
	case errs.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, "session_not_found", err, "Pricing session not found", nil)

	case errs.Is(err, errs.ErrInvalidCoupon):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, "coupon_rejected", err, "Coupon rejected", couponReason(err))
	case errs.Is(err, errs.ErrComboIneligible):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, "combo_ineligible", err, "Combo is not eligible for this stay", nil)
	case errs.Is(err, errs.ErrBookingFailed):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, "booking_rejected", err, "Booking was rejected", bookingReason(err))

	case errs.Is(err, errs.ErrSessionConflict):
		httperr.AbortWithCode(c, http.StatusConflict, "session_conflict", err, "Pricing session changed, please retry", nil)
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		httperr.AbortWithCode(c, http.StatusConflict, "idempotency_key_reused", err, "Idempotency key was used for a different request", nil)
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithCode(c, http.StatusConflict, "booking_in_progress", err, "Booking request is currently being processed", nil)
	case errs.Is(err, errs.ErrDatesUnavailable):
		httperr.AbortWithCode(c, http.StatusConflict, "dates_unavailable", err, "Selected dates are not available", err.Error())
	case errs.Is(err, errs.ErrPriceChanged):
		httperr.AbortWithCode(c, http.StatusConflict, "price_changed", err, "Price changed, please review the new total", err.Error())

	case errs.Is(err, errs.ErrCouponServiceUnavailable):
		httperr.AbortWithCode(c, http.StatusServiceUnavailable, "coupon_service_unavailable", err, "Coupon service is unavailable", nil)
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithCode(c, http.StatusServiceUnavailable, "upstream_unavailable", err, "Service temporarily unavailable", nil)
	case errors.Is(err, context.DeadlineExceeded):
		httperr.AbortWithCode(c, http.StatusGatewayTimeout, "timeout", err, "Request timed out", nil)

	default:
		httperr.AbortWithCode(c, http.StatusInternalServerError, "internal_error", err, "Internal server error", nil)
	}
}

func couponReason(err error) any {
	var rejected *coupon.RejectedError
	if errors.As(err, &rejected) {
		return rejected.Error()
	}
	return nil
}

func bookingReason(err error) any {
	var rejected *booking.RejectedError
	if errors.As(err, &rejected) && rejected.Reason != "" {
		return rejected.Reason
	}
	return nil
}

// bindError is returned for malformed bodies and ozzo validation failures.
func bindError(c *gin.Context, err error) {
	httperr.AbortWithCode(c, http.StatusBadRequest, "invalid_request", err, "Invalid request", err.Error())
}

func errInvalidParam(name string) error {
	return errs.Newf("invalid %s parameter", name)
}
