package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"homestay-pricing/internal/domain/availability"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/domain/stay"

	"github.com/shopspring/decimal"
)

type quickDay struct {
	Status         string           `json:"status"`
	Color          string           `json:"color"`
	AvailableRooms int              `json:"available_rooms"`
	BookedRooms    int              `json:"booked_rooms"`
	PendingRooms   int              `json:"pending_rooms"`
	MinPrice       *decimal.Decimal `json:"min_price"`
	Tooltip        string           `json:"tooltip"`
}

type quickAvailabilityResponse struct {
	Month        int                 `json:"month"`
	Year         int                 `json:"year"`
	Availability map[string]quickDay `json:"availability"`
	TotalRooms   int                 `json:"total_rooms"`
}

func (c *Client) QuickAvailability(ctx context.Context, homestayID int64, month availability.Month) (availability.Calendar, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(month.Year))
	q.Set("month", strconv.Itoa(int(month.Month)))
	path := fmt.Sprintf("/api/availability/quick/%d?%s", homestayID, q.Encode())

	var resp quickAvailabilityResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return availability.Calendar{}, err
	}

	cal := availability.Calendar{
		HomestayID: homestayID,
		Month:      month,
		TotalRooms: resp.TotalRooms,
		Days:       make([]availability.Day, 0, len(resp.Availability)),
	}
	for raw, d := range resp.Availability {
		date, err := stay.ParseDate(raw)
		if err != nil {
			c.Logger.Warn("skipping availability day with unreadable date",
				slog.Int64("homestay_id", homestayID), slog.String("date", raw))
			continue
		}
		status := availability.ParseStatus(d.Status)
		day := availability.Day{
			Date:           date,
			Status:         status,
			Color:          d.Color,
			AvailableRooms: d.AvailableRooms,
			BookedRooms:    d.BookedRooms,
			PendingRooms:   d.PendingRooms,
			Tooltip:        d.Tooltip,
		}
		if day.Color == "" {
			day.Color = status.Color()
		}
		if d.MinPrice != nil {
			if p, err := money.FromDecimal(*d.MinPrice); err == nil {
				day.MinPrice = &p
			} else {
				c.Logger.Warn("dropping out of range min_price",
					slog.Int64("homestay_id", homestayID), slog.String("date", raw))
			}
		}
		cal.Days = append(cal.Days, day)
	}
	cal.Sort()
	return cal, nil
}
