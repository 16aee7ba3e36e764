package response

import (
	"time"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type ComboResponse struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	MinNights         int        `json:"minNights"`
	MaxNights         *int       `json:"maxNights,omitempty"`
	IncludesBreakfast bool       `json:"includesBreakfast"`
	IncludesTransport bool       `json:"includesTransport"`
	IncludesTour      bool       `json:"includesTour"`
	ValidFrom         *time.Time `json:"validFrom,omitempty"`
	ValidUntil        *time.Time `json:"validUntil,omitempty"`

	OriginalPrice   Amount `json:"originalPrice" copier:"-"`
	ComboPrice      Amount `json:"comboPrice" copier:"-"`
	Discount        Amount `json:"discount" copier:"-"`
	DiscountPercent int    `json:"discountPercent" copier:"-"`
}

func FromCombo(p combo.Package) (*ComboResponse, error) {
	var res ComboResponse
	if err := copier.Copy(&res, &p); err != nil {
		return nil, errs.Wrap(err, "failed to map combo")
	}
	res.OriginalPrice = NewAmount(p.OriginalPrice)
	res.ComboPrice = NewAmount(p.ComboPrice)
	res.Discount = NewAmount(p.Discount())
	res.DiscountPercent = p.DiscountPercent()
	return &res, nil
}

func FromCombos(items []combo.Package) ([]ComboResponse, error) {
	res := make([]ComboResponse, 0, len(items))
	for _, p := range items {
		c, err := FromCombo(p)
		if err != nil {
			return nil, err
		}
		res = append(res, *c)
	}
	return res, nil
}
