package queries

import (
	"context"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/usecase/shared"
)

type DynamicPriceInput struct {
	HomestayID int64
	CheckIn    string
	CheckOut   string
	BasePrice  *money.VND
}

type ComboListInput struct {
	HomestayID        int64
	CheckIn           string
	CheckOut          string
	MinNights         *int
	IncludesBreakfast *bool
}

type PricingQueries interface {
	Quote(ctx context.Context, in shared.QuoteInput) (*shared.Quote, error)
	Dynamic(ctx context.Context, in DynamicPriceInput) (*pricing.DynamicPriceResult, error)
	EligibleCombos(ctx context.Context, in ComboListInput) ([]combo.Package, error)
}

type pricingQueriesImpl struct {
	quoter     *shared.Quoter
	calculator shared.PriceCalculator
	combos     shared.ComboCatalog
}

func NewPricingQueries(quoter *shared.Quoter, calculator shared.PriceCalculator, combos shared.ComboCatalog) PricingQueries {
	return &pricingQueriesImpl{
		quoter:     quoter,
		calculator: calculator,
		combos:     combos,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, in shared.QuoteInput) (*shared.Quote, error) {
	return q.quoter.Quote(ctx, in)
}

func (q *pricingQueriesImpl) Dynamic(ctx context.Context, in DynamicPriceInput) (*pricing.DynamicPriceResult, error) {
	iv, err := q.quoter.Policy().StayLimits().Create(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, shared.MapDomainError(err)
	}
	base, err := q.quoter.BasePrice(ctx, in.HomestayID, in.BasePrice)
	if err != nil {
		return nil, err
	}
	result, err := q.calculator.ComputeNightlyBreakdown(ctx, in.HomestayID, iv, base)
	if err != nil {
		return nil, shared.MapDomainError(err)
	}
	return &result, nil
}

// EligibleCombos lists the combos offered for the homestay. When both dates are
// given only combos whose night range fits the stay are returned.
func (q *pricingQueriesImpl) EligibleCombos(ctx context.Context, in ComboListInput) ([]combo.Package, error) {
	var iv *stay.Interval
	if in.CheckIn != "" || in.CheckOut != "" {
		parsed, err := q.quoter.Policy().StayLimits().Create(in.CheckIn, in.CheckOut)
		if err != nil {
			return nil, shared.MapDomainError(err)
		}
		iv = &parsed
	}

	filter := combo.Filter{
		MinNights:         in.MinNights,
		IncludesBreakfast: in.IncludesBreakfast,
	}
	if in.HomestayID > 0 {
		filter.HomestayID = &in.HomestayID
	}

	combos, err := q.combos.List(ctx, filter, q.quoter.Now())
	if err != nil {
		return nil, shared.MapDomainError(err)
	}
	if iv == nil {
		return combos, nil
	}
	return combo.ListEligible(combos, *iv), nil
}
