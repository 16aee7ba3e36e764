package pgquery

import "github.com/jackc/pgx/v5/pgtype"

type SeasonalPricing struct {
	ID                int64
	Name              string
	StartDate         pgtype.Date
	EndDate           pgtype.Date
	PriceMultiplier   pgtype.Numeric
	Surcharge         int64
	AppliesToWeekends bool
	AppliesToHolidays bool
	HomestayIds       []int64
	IsActive          bool
}

type Holidays struct {
	ID              int64
	Name            string
	FromDate        pgtype.Date
	ToDate          pgtype.Date
	PriceMultiplier pgtype.Numeric
	Surcharge       int64
}

type ComboPackages struct {
	ID                int64
	Name              string
	Description       pgtype.Text
	MinNights         int32
	MaxNights         pgtype.Int4
	IncludesBreakfast bool
	IncludesTransport bool
	IncludesTour      bool
	OriginalPrice     int64
	ComboPrice        int64
	ValidFrom         pgtype.Timestamptz
	ValidUntil        pgtype.Timestamptz
	IsActive          bool
}
