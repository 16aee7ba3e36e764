package stay

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("stay: date is not a valid calendar date")
	ErrInvalidDateOrder = errors.New("stay: check-out must be after check-in")
	ErrBelowMinimumStay = errors.New("stay: below minimum stay")
	ErrAboveMaximumStay = errors.New("stay: above maximum stay")
)

const (
	DateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60

	DefaultMinimumStay = 1
	DefaultMaximumStay = 365
	// MaximumStayCeiling caps any configured maximum.
	MaximumStayCeiling = 3660
)

var acceptedLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Interval is a validated [checkIn, checkOut) stay. Check-in and check-out hours
// are a convention of the property and are not represented here.
type Interval struct {
	checkIn  time.Time
	checkOut time.Time
	nights   int
}

// Limits bounds the number of nights of a stay. Zero values fall back to the
// defaults and MaxNights never exceeds MaximumStayCeiling.
type Limits struct {
	MinNights int
	MaxNights int
}

func DefaultLimits() Limits {
	return Limits{MinNights: DefaultMinimumStay, MaxNights: DefaultMaximumStay}
}

func (l Limits) normalized() Limits {
	if l.MinNights < DefaultMinimumStay {
		l.MinNights = DefaultMinimumStay
	}
	if l.MaxNights <= 0 {
		l.MaxNights = DefaultMaximumStay
	}
	if l.MaxNights > MaximumStayCeiling {
		l.MaxNights = MaximumStayCeiling
	}
	return l
}

// Create parses two date-like inputs and validates them against minStay and
// the default maximum stay.
func Create(checkInRaw, checkOutRaw string, minStay int) (Interval, error) {
	return Limits{MinNights: minStay}.Create(checkInRaw, checkOutRaw)
}

func New(checkIn, checkOut time.Time, minStay int) (Interval, error) {
	return Limits{MinNights: minStay}.New(checkIn, checkOut)
}

func (l Limits) Create(checkInRaw, checkOutRaw string) (Interval, error) {
	checkIn, err := ParseDate(checkInRaw)
	if err != nil {
		return Interval{}, fmt.Errorf("check-in: %w", err)
	}
	checkOut, err := ParseDate(checkOutRaw)
	if err != nil {
		return Interval{}, fmt.Errorf("check-out: %w", err)
	}
	return l.New(checkIn, checkOut)
}

// New keeps each time in its own zone so the nights are the calendar dates
// the guest asked for.
func (l Limits) New(checkIn, checkOut time.Time) (Interval, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Interval{}, ErrInvalidDate
	}
	if !checkOut.After(checkIn) {
		return Interval{}, ErrInvalidDateOrder
	}

	l = l.normalized()
	nights := nightsBetween(checkIn, checkOut)
	if nights < l.MinNights {
		return Interval{}, &MinimumStayError{Nights: nights, Minimum: l.MinNights}
	}
	if nights > l.MaxNights {
		return Interval{}, &MaximumStayError{Nights: nights, Maximum: l.MaxNights}
	}

	return Interval{checkIn: checkIn, checkOut: checkOut, nights: nights}, nil
}

// ParseDate accepts a plain calendar date or a timestamp. Plain dates and
// timestamps without an offset are read as UTC; a timestamp with an offset
// keeps it.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// nightsBetween is the ceiling of the elapsed days, counted on whole seconds
// since time.Duration saturates after about 292 years.
func nightsBetween(checkIn, checkOut time.Time) int {
	secs := checkOut.Unix() - checkIn.Unix()
	nanos := checkOut.Nanosecond() - checkIn.Nanosecond()
	if nanos < 0 {
		secs--
		nanos += int(time.Second)
	}
	nights := secs / secondsPerDay
	if secs%secondsPerDay != 0 || nanos > 0 {
		nights++
	}
	return int(nights)
}

func (iv Interval) CheckIn() time.Time  { return iv.checkIn }
func (iv Interval) CheckOut() time.Time { return iv.checkOut }
func (iv Interval) Nights() int         { return iv.nights }
func (iv Interval) IsZero() bool        { return iv.nights == 0 }

// Dates returns one calendar date per night, starting at the check-in date.
// The check-out date itself is never included.
func (iv Interval) Dates() []time.Time {
	first := truncateToDate(iv.checkIn)
	dates := make([]time.Time, 0, iv.nights)
	for i := 0; i < iv.nights; i++ {
		dates = append(dates, first.AddDate(0, 0, i))
	}
	return dates
}

func (iv Interval) Equal(other Interval) bool {
	return iv.checkIn.Equal(other.checkIn) && iv.checkOut.Equal(other.checkOut) &&
		truncateToDate(iv.checkIn).Equal(truncateToDate(other.checkIn))
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.checkIn.Format(DateLayout), iv.checkOut.Format(DateLayout))
}

type intervalJSON struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Nights   int       `json:"nights"`
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{CheckIn: iv.checkIn, CheckOut: iv.checkOut, Nights: iv.nights})
}

// UnmarshalJSON re-derives nights from the stored dates. Stored intervals were
// validated when created, so only the ceiling applies here.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Limits{MaxNights: MaximumStayCeiling}.New(raw.CheckIn, raw.CheckOut)
	if err != nil {
		return err
	}
	*iv = parsed
	return nil
}

// truncateToDate reads the calendar date in t's own zone.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type MinimumStayError struct {
	Nights  int
	Minimum int
}

func (e *MinimumStayError) Error() string {
	return fmt.Sprintf("stay: %d night(s) is below the minimum stay of %d", e.Nights, e.Minimum)
}

func (e *MinimumStayError) Is(target error) bool {
	return target == ErrBelowMinimumStay
}

type MaximumStayError struct {
	Nights  int
	Maximum int
}

func (e *MaximumStayError) Error() string {
	return fmt.Sprintf("stay: %d night(s) is above the maximum stay of %d", e.Nights, e.Maximum)
}

func (e *MaximumStayError) Is(target error) bool {
	return target == ErrAboveMaximumStay
}
