package combo

import (
	"errors"
	"time"

	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/stay"

	"github.com/shopspring/decimal"
)

var (
	ErrComboIneligible   = errors.New("combo is not eligible for the current stay")
	ErrInvalidMinNights  = errors.New("combo minimum nights must be at least 1")
	ErrInvalidMaxNights  = errors.New("combo maximum nights must not be below minimum nights")
	ErrInvalidComboPrice = errors.New("combo price must be between 0 and the original price")
	ErrInvalidComboName  = errors.New("combo name is required")
	ErrNegativeOrigPrice = errors.New("combo original price cannot be negative")
)

// Package is a bundled stay offer. Values are read-only snapshots of the promotions catalog.
type Package struct {
	ID                int64
	Name              string
	Description       string
	MinNights         int
	MaxNights         *int
	IncludesBreakfast bool
	IncludesTransport bool
	IncludesTour      bool
	OriginalPrice     money.VND
	ComboPrice        money.VND
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	Active            bool
}

func (p Package) Validate() error {
	if p.Name == "" {
		return ErrInvalidComboName
	}
	if p.MinNights < 1 {
		return ErrInvalidMinNights
	}
	if p.MaxNights != nil && *p.MaxNights < p.MinNights {
		return ErrInvalidMaxNights
	}
	if p.OriginalPrice.IsNegative() {
		return ErrNegativeOrigPrice
	}
	if p.ComboPrice.IsNegative() || p.ComboPrice > p.OriginalPrice {
		return ErrInvalidComboPrice
	}
	return nil
}

// Savings is the advertised saving. Never negative.
func (p Package) Savings() money.VND {
	return money.Max(money.Zero, p.OriginalPrice-p.ComboPrice)
}

// Discount is the amount taken off the booking total when the combo is selected.
// It is derived from the two prices on every call rather than from Savings.
func (p Package) Discount() money.VND {
	if p.ComboPrice < 0 || p.OriginalPrice <= p.ComboPrice {
		return money.Zero
	}
	return p.OriginalPrice - p.ComboPrice
}

// DiscountPercent returns the saving as a whole percentage of the original price.
func (p Package) DiscountPercent() int {
	if p.OriginalPrice <= 0 {
		return 0
	}
	pct := p.Discount().Decimal().
		Div(p.OriginalPrice.Decimal()).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}

func (p Package) EligibleFor(nights int) bool {
	if nights < p.MinNights {
		return false
	}
	if p.MaxNights != nil && nights > *p.MaxNights {
		return false
	}
	return true
}

// AvailableAt reports whether the catalog entry is active and inside its validity window.
func (p Package) AvailableAt(t time.Time) bool {
	if !p.Active {
		return false
	}
	if p.ValidFrom != nil && t.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && t.After(*p.ValidUntil) {
		return false
	}
	return true
}

// ListEligible keeps the combos the stay qualifies for, in source order.
func ListEligible(combos []Package, iv stay.Interval) []Package {
	eligible := make([]Package, 0, len(combos))
	for _, c := range combos {
		if c.EligibleFor(iv.Nights()) {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

func FindByID(combos []Package, id int64) (Package, bool) {
	for _, c := range combos {
		if c.ID == id {
			return c, true
		}
	}
	return Package{}, false
}

type Filter struct {
	MinNights         *int
	IncludesBreakfast *bool
	HomestayID        *int64
}
