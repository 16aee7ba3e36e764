package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const comboColumns = `
       c.id, c.name, c.description, c.min_nights, c.max_nights,
       c.includes_breakfast, c.includes_transport, c.includes_tour,
       c.original_price, c.combo_price, c.valid_from, c.valid_until, c.is_active`

const listComboPackages = `
SELECT` + comboColumns + `
FROM combo_packages c
WHERE c.is_active
  AND (c.valid_from IS NULL OR c.valid_from <= $4)
  AND (c.valid_until IS NULL OR c.valid_until >= $4)
  AND ($2::int IS NULL OR c.min_nights >= $2)
  AND ($3::boolean IS NULL OR c.includes_breakfast = $3)
  AND (
    $1::bigint IS NULL
    OR NOT EXISTS (SELECT 1 FROM combo_homestays ch WHERE ch.combo_id = c.id)
    OR EXISTS (SELECT 1 FROM combo_homestays ch WHERE ch.combo_id = c.id AND ch.homestay_id = $1)
  )
ORDER BY c.min_nights, c.combo_price, c.id
`

type ListComboPackagesParams struct {
	HomestayID        pgtype.Int8
	MinNights         pgtype.Int4
	IncludesBreakfast pgtype.Bool
	At                pgtype.Timestamptz
}

func (q *Queries) ListComboPackages(ctx context.Context, db DBTX, arg ListComboPackagesParams) ([]ComboPackages, error) {
	rows, err := db.Query(ctx, listComboPackages, arg.HomestayID, arg.MinNights, arg.IncludesBreakfast, arg.At)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ComboPackages
	for rows.Next() {
		i, err := scanComboPackage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getComboPackage = `
SELECT` + comboColumns + `
FROM combo_packages c
WHERE c.id = $1
`

func (q *Queries) GetComboPackage(ctx context.Context, db DBTX, id int64) (ComboPackages, error) {
	return scanComboPackage(db.QueryRow(ctx, getComboPackage, id))
}

func scanComboPackage(row pgx.Row) (ComboPackages, error) {
	var i ComboPackages
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.MinNights,
		&i.MaxNights,
		&i.IncludesBreakfast,
		&i.IncludesTransport,
		&i.IncludesTour,
		&i.OriginalPrice,
		&i.ComboPrice,
		&i.ValidFrom,
		&i.ValidUntil,
		&i.IsActive,
	)
	return i, err
}
