package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const listSeasonalPricing = `
SELECT id, name, start_date, end_date, price_multiplier, surcharge,
       applies_to_weekends, applies_to_holidays, homestay_ids, is_active
FROM seasonal_pricing
WHERE is_active
  AND start_date <= $3
  AND end_date >= $2
  AND (cardinality(homestay_ids) = 0 OR $1::bigint = ANY(homestay_ids))
ORDER BY start_date, id
`

type ListSeasonalPricingParams struct {
	HomestayID int64
	FromDate   pgtype.Date
	ToDate     pgtype.Date
}

func (q *Queries) ListSeasonalPricing(ctx context.Context, db DBTX, arg ListSeasonalPricingParams) ([]SeasonalPricing, error) {
	rows, err := db.Query(ctx, listSeasonalPricing, arg.HomestayID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SeasonalPricing
	for rows.Next() {
		var i SeasonalPricing
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.StartDate,
			&i.EndDate,
			&i.PriceMultiplier,
			&i.Surcharge,
			&i.AppliesToWeekends,
			&i.AppliesToHolidays,
			&i.HomestayIds,
			&i.IsActive,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listHolidays = `
SELECT id, name, from_date, to_date, price_multiplier, surcharge
FROM holidays
WHERE from_date <= $2 AND to_date >= $1
ORDER BY from_date, id
`

type ListHolidaysParams struct {
	FromDate pgtype.Date
	ToDate   pgtype.Date
}

func (q *Queries) ListHolidays(ctx context.Context, db DBTX, arg ListHolidaysParams) ([]Holidays, error) {
	rows, err := db.Query(ctx, listHolidays, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Holidays
	for rows.Next() {
		var i Holidays
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.FromDate,
			&i.ToDate,
			&i.PriceMultiplier,
			&i.Surcharge,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
