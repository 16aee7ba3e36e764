package upstream

import (
	"context"
	"fmt"
	"net/http"

	"homestay-pricing/internal/domain/money"

	"github.com/shopspring/decimal"
)

type homestayResponse struct {
	ID            int64           `json:"id"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

// PricePerNight reads the listing's base nightly rate from the homestay catalog.
func (c *Client) PricePerNight(ctx context.Context, homestayID int64) (money.VND, error) {
	var resp homestayResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/homestays/%d", homestayID), "", nil, &resp); err != nil {
		return 0, err
	}
	return c.amount(resp.PricePerNight, "price_per_night")
}
