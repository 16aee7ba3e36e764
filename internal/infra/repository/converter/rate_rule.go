package converter

import (
	"fmt"

	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/infra/pgquery"
	"homestay-pricing/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func SeasonalRuleFromRow(row pgquery.SeasonalPricing) (pricing.SeasonalRule, error) {
	multiplier, err := pgconv.DecimalFromNumeric(row.PriceMultiplier, decimal.NewFromInt(1))
	if err != nil {
		return pricing.SeasonalRule{}, fmt.Errorf("seasonal rule %d: %w", row.ID, err)
	}
	return pricing.SeasonalRule{
		ID:                row.ID,
		Name:              row.Name,
		StartDate:         pgconv.DateFromPgtype(row.StartDate),
		EndDate:           pgconv.DateFromPgtype(row.EndDate),
		Multiplier:        multiplier,
		Surcharge:         money.VND(row.Surcharge),
		AppliesToWeekends: row.AppliesToWeekends,
		AppliesToHolidays: row.AppliesToHolidays,
		HomestayIDs:       row.HomestayIds,
	}, nil
}

func HolidayFromRow(row pgquery.Holidays) (pricing.Holiday, error) {
	multiplier, err := pgconv.DecimalFromNumeric(row.PriceMultiplier, decimal.NewFromInt(1))
	if err != nil {
		return pricing.Holiday{}, fmt.Errorf("holiday %d: %w", row.ID, err)
	}
	return pricing.Holiday{
		Name:       row.Name,
		From:       pgconv.DateFromPgtype(row.FromDate),
		To:         pgconv.DateFromPgtype(row.ToDate),
		Multiplier: multiplier,
		Surcharge:  money.VND(row.Surcharge),
	}, nil
}
