package kalshi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetEventsOptions configures a GetEvents request.
type GetEventsOptions struct {
	Limit             int
	Cursor            string
	SeriesTicker      string
	Status            string
	WithNestedMarkets bool
}

// GetEvents fetches a page of events.
func (c *Client) GetEvents(ctx context.Context, opts GetEventsOptions) (*EventsResponse, error) {
	query := url.Values{}

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.SeriesTicker != "" {
		query.Set("series_ticker", opts.SeriesTicker)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.WithNestedMarkets {
		query.Set("with_nested_markets", "true")
	}

	var resp EventsResponse
	err := c.execute(ctx, call{
		op:     "get_events",
		method: http.MethodGet,
		path:   "/events",
		query:  query,
		auth:   authOptional,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}

	return &resp, nil
}

// GetAllEvents fetches all events by paginating through results.
// Uses DefaultPaginationTimeout if the context has no deadline.
func (c *Client) GetAllEvents(ctx context.Context) ([]Event, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPaginationTimeout)
		defer cancel()
	}

	var allEvents []Event
	opts := GetEventsOptions{Limit: 1000}

	for {
		resp, err := c.GetEvents(ctx, opts)
		if err != nil {
			return nil, err
		}

		allEvents = append(allEvents, resp.Events...)

		if resp.Cursor == "" {
			break
		}
		opts.Cursor = resp.Cursor
	}

	return allEvents, nil
}

// GetEvent fetches a single event by ticker, optionally with its markets
// nested in the response.
func (c *Client) GetEvent(ctx context.Context, eventTicker string, withNestedMarkets bool) (*Event, error) {
	if eventTicker == "" {
		return nil, &ValidationError{Field: "event_ticker", Reason: "must not be empty"}
	}

	query := url.Values{}
	if withNestedMarkets {
		query.Set("with_nested_markets", "true")
	}

	var resp singleEventResponse
	err := c.execute(ctx, call{
		op:     "get_event",
		method: http.MethodGet,
		path:   "/events/" + eventTicker,
		query:  query,
		auth:   authOptional,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventTicker, notFound(err, "event", eventTicker))
	}

	return &resp.Event, nil
}
