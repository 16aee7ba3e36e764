package money

import (
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// VND is an amount in Vietnamese đồng. The currency has no subunit, so all
// arithmetic stays integral and rounding happens only when a decimal factor is applied.
type VND int64

const Zero VND = 0

// MaxAmount bounds every amount the engine computes. A few bounded amounts
// summed together stay far below the int64 range.
const MaxAmount VND = 1_000_000_000_000_000

var ErrOutOfRange = errors.New("money: amount out of range")

// vi-VN grouping: "." for thousands, no fraction digits.
const viGroupingFormat = "#.###,"

func (v VND) Int64() int64 {
	return int64(v)
}

func (v VND) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}

func (v VND) IsNegative() bool {
	return v < 0
}

func (v VND) InRange() bool {
	return v >= -MaxAmount && v <= MaxAmount
}

// Times multiplies by a decimal factor and rounds half away from zero to whole đồng.
func (v VND) Times(factor decimal.Decimal) (VND, error) {
	return FromDecimal(v.Decimal().Mul(factor))
}

// TimesInt multiplies by a count, e.g. a nightly rate by the nights.
func (v VND) TimesInt(n int) (VND, error) {
	return FromDecimal(v.Decimal().Mul(decimal.NewFromInt(int64(n))))
}

func (v VND) Plus(other VND) (VND, error) {
	if !v.InRange() || !other.InRange() {
		return 0, ErrOutOfRange
	}
	sum := v + other
	if !sum.InRange() {
		return 0, ErrOutOfRange
	}
	return sum, nil
}

// FromDecimal rounds to the nearest đồng and fails outside ±MaxAmount.
func FromDecimal(d decimal.Decimal) (VND, error) {
	rounded := d.Round(0)
	if rounded.Abs().GreaterThan(MaxAmount.Decimal()) {
		return 0, ErrOutOfRange
	}
	return VND(rounded.IntPart()), nil
}

// Clamp bounds v to [lo, hi].
func (v VND) Clamp(lo, hi VND) VND {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Max(a, b VND) VND {
	if a > b {
		return a
	}
	return b
}

// Format renders the amount the way the booking UI shows it, e.g. "1.000.000 ₫".
func (v VND) Format() string {
	return humanize.FormatInteger(viGroupingFormat, int(v)) + " ₫"
}
