package middleware

import "homestay-pricing/internal/pkg/errs"

var errMissingToken = errs.New("access token required")
