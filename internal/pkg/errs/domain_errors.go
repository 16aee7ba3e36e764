package errs

import "errors"

// Use-case level sentinels shared by commands and queries.
var (
	// Stay errors
	ErrInvalidStay = errors.New("invalid stay interval")

	// Homestay errors
	ErrHomestayNotFound = errors.New("homestay not found")

	// Combo errors
	ErrComboNotFound   = errors.New("combo package not found")
	ErrComboIneligible = errors.New("combo package not eligible for stay")

	// Coupon errors
	ErrInvalidCoupon            = errors.New("invalid coupon")
	ErrCouponServiceUnavailable = errors.New("coupon service unavailable")

	// Session errors
	ErrSessionNotFound = errors.New("pricing session not found")
	ErrSessionConflict = errors.New("pricing session changed concurrently")

	// Booking errors
	ErrDatesUnavailable       = errors.New("dates unavailable")
	ErrBookingFailed          = errors.New("booking submission failed")
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with a different request")
	ErrPriceChanged           = errors.New("price changed since it was quoted")

	// Payment errors
	ErrUnknownPaymentProvider = errors.New("unknown payment provider")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
