package kalshi

import (
	"context"
	"fmt"
	"net/http"
)

// GetSeries fetches a series by ticker.
func (c *Client) GetSeries(ctx context.Context, seriesTicker string) (*Series, error) {
	if seriesTicker == "" {
		return nil, &ValidationError{Field: "series_ticker", Reason: "must not be empty"}
	}

	var resp seriesResponse
	err := c.execute(ctx, call{
		op:     "get_series",
		method: http.MethodGet,
		path:   "/series/" + seriesTicker,
		auth:   authOptional,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get series %s: %w", seriesTicker, notFound(err, "series", seriesTicker))
	}

	return &resp.Series, nil
}
