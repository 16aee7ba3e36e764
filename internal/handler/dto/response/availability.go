package response

import (
	"homestay-pricing/internal/domain/availability"
	"homestay-pricing/internal/domain/stay"
)

type CalendarDayResponse struct {
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	Color          string  `json:"color"`
	AvailableRooms int     `json:"availableRooms"`
	BookedRooms    int     `json:"bookedRooms"`
	PendingRooms   int     `json:"pendingRooms"`
	MinPrice       *Amount `json:"minPrice,omitempty"`
	Tooltip        string  `json:"tooltip,omitempty"`
}

type CalendarResponse struct {
	HomestayID int64                 `json:"homestayId"`
	Year       int                   `json:"year"`
	Month      int                   `json:"month"`
	TotalRooms int                   `json:"totalRooms"`
	Days       []CalendarDayResponse `json:"days"`
}

func FromCalendar(c *availability.Calendar) *CalendarResponse {
	days := make([]CalendarDayResponse, len(c.Days))
	for i, d := range c.Days {
		days[i] = CalendarDayResponse{
			Date:           d.Date.Format(stay.DateLayout),
			Status:         string(d.Status),
			Color:          d.Status.Color(),
			AvailableRooms: d.AvailableRooms,
			BookedRooms:    d.BookedRooms,
			PendingRooms:   d.PendingRooms,
			MinPrice:       amountPtr(d.MinPrice),
			Tooltip:        d.Tooltip,
		}
	}
	return &CalendarResponse{
		HomestayID: c.HomestayID,
		Year:       c.Year,
		Month:      int(c.Month.Month),
		TotalRooms: c.TotalRooms,
		Days:       days,
	}
}
