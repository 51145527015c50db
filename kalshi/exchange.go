package kalshi

import (
	"context"
	"fmt"
	"net/http"
)

// GetExchangeStatus fetches the current exchange status.
func (c *Client) GetExchangeStatus(ctx context.Context) (*ExchangeStatus, error) {
	var resp ExchangeStatus
	err := c.execute(ctx, call{
		op:     "get_exchange_status",
		method: http.MethodGet,
		path:   "/exchange/status",
		auth:   authNone,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get exchange status: %w", err)
	}
	return &resp, nil
}

// GetExchangeSchedule fetches the standard trading hours and maintenance
// windows.
func (c *Client) GetExchangeSchedule(ctx context.Context) (*Schedule, error) {
	var resp scheduleResponse
	err := c.execute(ctx, call{
		op:     "get_exchange_schedule",
		method: http.MethodGet,
		path:   "/exchange/schedule",
		auth:   authNone,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get exchange schedule: %w", err)
	}
	return &resp.Schedule, nil
}
