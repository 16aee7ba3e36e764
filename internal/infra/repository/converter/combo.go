package converter

import (
	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/infra/pgquery"
	"homestay-pricing/internal/pkg/pgconv"
)

func ComboFromRow(row pgquery.ComboPackages) combo.Package {
	return combo.Package{
		ID:                row.ID,
		Name:              row.Name,
		Description:       pgconv.StringFromPgtype(row.Description),
		MinNights:         int(row.MinNights),
		MaxNights:         pgconv.IntPtrFromPgtype(row.MaxNights),
		IncludesBreakfast: row.IncludesBreakfast,
		IncludesTransport: row.IncludesTransport,
		IncludesTour:      row.IncludesTour,
		OriginalPrice:     money.VND(row.OriginalPrice),
		ComboPrice:        money.VND(row.ComboPrice),
		ValidFrom:         pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidUntil:        pgconv.TimePtrFromPgtype(row.ValidUntil),
		Active:            row.IsActive,
	}
}

func ComboFilterToParams(f combo.Filter) pgquery.ListComboPackagesParams {
	return pgquery.ListComboPackagesParams{
		HomestayID:        pgconv.Int8PtrToPgtype(f.HomestayID),
		MinNights:         pgconv.IntPtrToPgtype(f.MinNights),
		IncludesBreakfast: pgconv.BoolPtrToPgtype(f.IncludesBreakfast),
	}
}
