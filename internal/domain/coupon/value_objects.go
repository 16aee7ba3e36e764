package coupon

import (
	"errors"
	"strings"
	"unicode/utf8"

	"homestay-pricing/internal/domain/money"
)

var (
	ErrEmptyCode         = errors.New("coupon code is empty")
	ErrInvalidCouponCode = errors.New("invalid coupon code format")
)

const maxCodeLength = 50

type Code string

// NewCode trims and upper-cases raw input so "summer20" and "SUMMER20" are the same coupon.
func NewCode(raw string) (Code, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return Code(""), ErrEmptyCode
	}
	if utf8.RuneCountInString(code) > maxCodeLength {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Basis is the pricing context a coupon was validated against.
type Basis struct {
	Subtotal money.VND `json:"subtotal"`
	ComboID  *int64    `json:"comboId,omitempty"`
	Guests   int       `json:"guests"`
	Stay     string    `json:"stay"`
}

// subtotals closer than this are the same subtotal
const subtotalEpsilon money.VND = 1

func (b Basis) Matches(other Basis) bool {
	diff := b.Subtotal - other.Subtotal
	if diff < 0 {
		diff = -diff
	}
	if diff > subtotalEpsilon {
		return false
	}
	if b.Guests != other.Guests || b.Stay != other.Stay {
		return false
	}
	switch {
	case b.ComboID == nil && other.ComboID == nil:
		return true
	case b.ComboID == nil || other.ComboID == nil:
		return false
	default:
		return *b.ComboID == *other.ComboID
	}
}

// ClampDiscount bounds a server-reported discount to [0, subtotal].
func ClampDiscount(discount, subtotal money.VND) money.VND {
	if subtotal < 0 {
		subtotal = money.Zero
	}
	return discount.Clamp(money.Zero, subtotal)
}
