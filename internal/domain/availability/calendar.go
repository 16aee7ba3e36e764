package availability

import (
	"errors"
	"sort"
	"time"

	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/stay"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusBooked    Status = "booked"
	StatusBlocked   Status = "blocked"
	StatusNotSet    Status = "not_set"
)

var ErrInvalidMonth = errors.New("availability: month must be between 1 and 12")

var statusColors = map[Status]string{
	StatusAvailable: "#4caf50",
	StatusPending:   "#ff9800",
	StatusBooked:    "#f44336",
	StatusBlocked:   "#9e9e9e",
	StatusNotSet:    "#e0e0e0",
}

func ParseStatus(s string) Status {
	switch st := Status(s); st {
	case StatusAvailable, StatusPending, StatusBooked, StatusBlocked:
		return st
	default:
		return StatusNotSet
	}
}

// Color is the calendar hint shown for the status.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusNotSet]
}

// Blocks reports whether a night with this status cannot be booked.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusBooked || s == StatusBlocked
}

type Day struct {
	Date           time.Time  `json:"date"`
	Status         Status     `json:"status"`
	Color          string     `json:"color"`
	AvailableRooms int        `json:"availableRooms"`
	BookedRooms    int        `json:"bookedRooms"`
	PendingRooms   int        `json:"pendingRooms"`
	MinPrice       *money.VND `json:"minPrice,omitempty"`
	Tooltip        string     `json:"tooltip"`
}

type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func NewMonth(year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Next() Month {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return MonthOf(first)
}

// MonthsCovering lists the calendar months containing the nights of iv.
func MonthsCovering(iv stay.Interval) []Month {
	dates := iv.Dates()
	if len(dates) == 0 {
		return nil
	}
	last := MonthOf(dates[len(dates)-1])
	months := []Month{MonthOf(dates[0])}
	for months[len(months)-1] != last {
		months = append(months, months[len(months)-1].Next())
	}
	return months
}

type Calendar struct {
	HomestayID int64 `json:"homestayId"`
	Month
	TotalRooms int   `json:"totalRooms"`
	Days       []Day `json:"days"`
}

// Sort orders days by date.
func (c *Calendar) Sort() {
	sort.Slice(c.Days, func(i, j int) bool { return c.Days[i].Date.Before(c.Days[j].Date) })
}

func (c Calendar) Day(date time.Time) (Day, bool) {
	key := date.Format(stay.DateLayout)
	for _, d := range c.Days {
		if d.Date.Format(stay.DateLayout) == key {
			return d, true
		}
	}
	return Day{}, false
}

// Blocking returns the nights of iv that cannot be booked according to the calendars.
// Nights missing from every calendar are treated as not set and do not block.
func Blocking(iv stay.Interval, calendars ...Calendar) []Day {
	var blocked []Day
	for _, date := range iv.Dates() {
		for _, cal := range calendars {
			d, ok := cal.Day(date)
			if !ok {
				continue
			}
			if d.Status.Blocks() {
				blocked = append(blocked, d)
			}
			break
		}
	}
	return blocked
}
