package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/stay"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeBasePrice = errors.New("pricing: base price cannot be negative")
	ErrBasePriceTooLarge = errors.New("pricing: base price is above the nightly maximum")
	ErrEmptyInterval     = errors.New("pricing: stay interval has no nights")
)

// MaxBasePrice bounds the nightly rate so that a stay of the longest allowed
// length still totals well inside money.MaxAmount.
const MaxBasePrice money.VND = 1_000_000_000

const (
	FallbackWarning   = "dynamic pricing is unavailable, the standard nightly rate was used"
	OutOfRangeWarning = "dynamic pricing produced an out of range price, the standard nightly rate was used"
)

var DefaultWeekendMultiplier = decimal.RequireFromString("1.2")

// NightlyPriceEntry prices one night. FinalPrice = round(BasePrice*Multiplier) + Surcharge.
type NightlyPriceEntry struct {
	Date       time.Time       `json:"date"`
	BasePrice  money.VND       `json:"basePrice"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Surcharge  money.VND       `json:"surcharge"`
	FinalPrice money.VND       `json:"finalPrice"`
	Reasons    []string        `json:"reasons"`
}

type DynamicPriceResult struct {
	HomestayID   int64               `json:"homestayId"`
	TotalPrice   money.VND           `json:"totalPrice"`
	Nights       int                 `json:"nights"`
	AveragePrice money.VND           `json:"averagePrice"`
	BasePrice    money.VND           `json:"basePrice"`
	Breakdown    []NightlyPriceEntry `json:"priceBreakdown"`
	Fallback     bool                `json:"fallback"`
	Warnings     []string            `json:"warnings,omitempty"`
}

// BasePriceTotal is what the stay would cost without any adjustment.
func (r DynamicPriceResult) BasePriceTotal() (money.VND, error) {
	return r.BasePrice.TimesInt(r.Nights)
}

// CheckBasePrice accepts a nightly rate in [0, MaxBasePrice].
func CheckBasePrice(basePrice money.VND) error {
	if basePrice.IsNegative() {
		return ErrNegativeBasePrice
	}
	if basePrice > MaxBasePrice {
		return ErrBasePriceTooLarge
	}
	return nil
}

type CalculatorOptions struct {
	WeekendMultiplier decimal.Decimal
	// Timeout bounds a single rate source lookup. Zero means no extra bound.
	Timeout time.Duration
}

type DynamicPriceCalculator struct {
	source            RateRuleSource
	weekendMultiplier decimal.Decimal
	timeout           time.Duration
}

func NewDynamicPriceCalculator(source RateRuleSource, opts CalculatorOptions) *DynamicPriceCalculator {
	weekend := opts.WeekendMultiplier
	if weekend.IsZero() || weekend.IsNegative() {
		weekend = DefaultWeekendMultiplier
	}
	return &DynamicPriceCalculator{
		source:            source,
		weekendMultiplier: weekend,
		timeout:           opts.Timeout,
	}
}

// ComputeNightlyBreakdown prices every night of iv. A failing rate source
// yields the flat fallback with a warning instead of an error. An error is
// only returned for bad input or when ctx itself is done.
func (c *DynamicPriceCalculator) ComputeNightlyBreakdown(
	ctx context.Context,
	homestayID int64,
	iv stay.Interval,
	basePrice money.VND,
) (DynamicPriceResult, error) {
	if err := CheckBasePrice(basePrice); err != nil {
		return DynamicPriceResult{}, err
	}
	if iv.IsZero() {
		return DynamicPriceResult{}, ErrEmptyInterval
	}

	schedule, err := c.lookup(ctx, homestayID, iv)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return DynamicPriceResult{}, ctxErr
		}
		return Fallback(homestayID, iv, basePrice, FallbackWarning)
	}

	schedule, warnings := sanitize(schedule)

	result, err := c.priceStay(homestayID, iv, basePrice, schedule)
	if err != nil {
		// absurd rules must not block the booking any more than a missing rate source does
		return Fallback(homestayID, iv, basePrice, OutOfRangeWarning)
	}
	result.Warnings = warnings
	return result, nil
}

func (c *DynamicPriceCalculator) priceStay(homestayID int64, iv stay.Interval, basePrice money.VND, schedule RateSchedule) (DynamicPriceResult, error) {
	entries := make([]NightlyPriceEntry, 0, iv.Nights())
	total := money.Zero
	for _, date := range iv.Dates() {
		entry, err := c.priceNight(date, homestayID, basePrice, schedule)
		if err != nil {
			return DynamicPriceResult{}, err
		}
		if total, err = total.Plus(entry.FinalPrice); err != nil {
			return DynamicPriceResult{}, err
		}
		entries = append(entries, entry)
	}

	average, err := money.FromDecimal(total.Decimal().Div(decimal.NewFromInt(int64(iv.Nights()))))
	if err != nil {
		return DynamicPriceResult{}, err
	}
	return DynamicPriceResult{
		HomestayID:   homestayID,
		TotalPrice:   total,
		Nights:       iv.Nights(),
		AveragePrice: average,
		BasePrice:    basePrice,
		Breakdown:    entries,
	}, nil
}

func (c *DynamicPriceCalculator) lookup(ctx context.Context, homestayID int64, iv stay.Interval) (RateSchedule, error) {
	if c.source == nil {
		return RateSchedule{}, errors.New("pricing: no rate source configured")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.source.ScheduleFor(ctx, homestayID, iv)
}

func (c *DynamicPriceCalculator) priceNight(date time.Time, homestayID int64, basePrice money.VND, schedule RateSchedule) (NightlyPriceEntry, error) {
	multiplier := decimal.NewFromInt(1)
	surcharge := money.Zero
	var err error
	reasons := make([]string, 0, 2)

	holiday, isHoliday := holidayOn(schedule.Holidays, date)

	weekendPriced := false
	for _, rule := range schedule.Rules {
		if !rule.Covers(date) || !rule.AppliesToHomestay(homestayID) {
			continue
		}
		if isHoliday && !rule.AppliesToHolidays {
			continue
		}
		multiplier = multiplier.Mul(rule.Multiplier)
		if surcharge, err = surcharge.Plus(rule.Surcharge); err != nil {
			return NightlyPriceEntry{}, err
		}
		reasons = append(reasons, rule.Name)
		if rule.AppliesToWeekends {
			weekendPriced = true
		}
	}

	if isHoliday {
		multiplier = multiplier.Mul(holiday.Multiplier)
		if surcharge, err = surcharge.Plus(holiday.Surcharge); err != nil {
			return NightlyPriceEntry{}, err
		}
		reasons = append(reasons, holiday.Name)
	}

	if IsWeekend(date) && !weekendPriced {
		multiplier = multiplier.Mul(c.weekendMultiplier)
		reasons = append(reasons, ReasonWeekend)
	}

	adjusted, err := basePrice.Times(multiplier)
	if err != nil {
		return NightlyPriceEntry{}, err
	}
	final, err := adjusted.Plus(surcharge)
	if err != nil {
		return NightlyPriceEntry{}, err
	}
	return NightlyPriceEntry{
		Date:       date,
		BasePrice:  basePrice,
		Multiplier: multiplier,
		Surcharge:  surcharge,
		FinalPrice: final,
		Reasons:    reasons,
	}, nil
}

// Fallback prices the stay flat at basePrice per night with an empty breakdown.
func Fallback(homestayID int64, iv stay.Interval, basePrice money.VND, warning string) (DynamicPriceResult, error) {
	if err := CheckBasePrice(basePrice); err != nil {
		return DynamicPriceResult{}, err
	}
	total, err := basePrice.TimesInt(iv.Nights())
	if err != nil {
		return DynamicPriceResult{}, err
	}
	return DynamicPriceResult{
		HomestayID:   homestayID,
		TotalPrice:   total,
		Nights:       iv.Nights(),
		AveragePrice: basePrice,
		BasePrice:    basePrice,
		Breakdown:    []NightlyPriceEntry{},
		Fallback:     true,
		Warnings:     []string{warning},
	}, nil
}

// first matching holiday wins
func holidayOn(holidays []Holiday, date time.Time) (Holiday, bool) {
	for _, h := range holidays {
		if h.Covers(date) {
			return h, true
		}
	}
	return Holiday{}, false
}

func sanitize(schedule RateSchedule) (RateSchedule, []string) {
	var warnings []string
	clean := RateSchedule{
		Rules:    make([]SeasonalRule, 0, len(schedule.Rules)),
		Holidays: make([]Holiday, 0, len(schedule.Holidays)),
	}
	for _, r := range schedule.Rules {
		if !r.valid() {
			warnings = append(warnings, fmt.Sprintf("rate rule %q ignored: negative multiplier or surcharge out of range", r.Name))
			continue
		}
		clean.Rules = append(clean.Rules, r)
	}
	for _, h := range schedule.Holidays {
		if !h.valid() {
			warnings = append(warnings, fmt.Sprintf("holiday %q ignored: negative multiplier or surcharge out of range", h.Name))
			continue
		}
		clean.Holidays = append(clean.Holidays, h)
	}
	return clean, warnings
}
