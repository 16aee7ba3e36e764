package pricing

import (
	"context"
	"slices"
	"time"

	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/stay"

	"github.com/shopspring/decimal"
)

const ReasonWeekend = "Weekend"

// SeasonalRule adjusts every night inside [StartDate, EndDate] (inclusive, by calendar date).
//
// AppliesToWeekends marks a rule that already prices weekend nights, so the
// default weekend uplift is not stacked on top of it. Without AppliesToHolidays
// the rule steps aside on holiday nights and the holiday rate applies alone.
type SeasonalRule struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           time.Time       `json:"endDate"`
	Multiplier        decimal.Decimal `json:"multiplier"`
	Surcharge         money.VND       `json:"surcharge"`
	AppliesToWeekends bool            `json:"appliesToWeekends"`
	AppliesToHolidays bool            `json:"appliesToHolidays"`
	HomestayIDs       []int64         `json:"homestayIds,omitempty"`
}

func (r SeasonalRule) Covers(date time.Time) bool {
	d := calendarDate(date)
	return !d.Before(calendarDate(r.StartDate)) && !d.After(calendarDate(r.EndDate))
}

func (r SeasonalRule) AppliesToHomestay(homestayID int64) bool {
	return len(r.HomestayIDs) == 0 || slices.Contains(r.HomestayIDs, homestayID)
}

func (r SeasonalRule) valid() bool {
	return !r.Multiplier.IsNegative() && !r.Surcharge.IsNegative() && r.Surcharge <= money.MaxAmount
}

// Holiday covers [From, To] inclusive by calendar date.
type Holiday struct {
	Name       string          `json:"name"`
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Surcharge  money.VND       `json:"surcharge"`
}

func (h Holiday) Covers(date time.Time) bool {
	d := calendarDate(date)
	return !d.Before(calendarDate(h.From)) && !d.After(calendarDate(h.To))
}

func (h Holiday) valid() bool {
	return !h.Multiplier.IsNegative() && !h.Surcharge.IsNegative() && h.Surcharge <= money.MaxAmount
}

// RateSchedule is everything the calculator needs to price one stay.
type RateSchedule struct {
	Rules    []SeasonalRule `json:"rules"`
	Holidays []Holiday      `json:"holidays"`
}

type RateRuleSource interface {
	ScheduleFor(ctx context.Context, homestayID int64, iv stay.Interval) (RateSchedule, error)
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
