package kalshi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GetMarketsOptions configures a GetMarkets request.
type GetMarketsOptions struct {
	Limit        int
	Cursor       string
	EventTicker  string
	SeriesTicker string
	Tickers      []string
	Status       string
	MinCloseTS   int64
	MaxCloseTS   int64
}

// GetMarkets fetches a page of markets.
func (c *Client) GetMarkets(ctx context.Context, opts GetMarketsOptions) (*MarketsResponse, error) {
	query := url.Values{}

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.EventTicker != "" {
		query.Set("event_ticker", opts.EventTicker)
	}
	if opts.SeriesTicker != "" {
		query.Set("series_ticker", opts.SeriesTicker)
	}
	if len(opts.Tickers) > 0 {
		query.Set("tickers", strings.Join(opts.Tickers, ","))
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.MinCloseTS > 0 {
		query.Set("min_close_ts", strconv.FormatInt(opts.MinCloseTS, 10))
	}
	if opts.MaxCloseTS > 0 {
		query.Set("max_close_ts", strconv.FormatInt(opts.MaxCloseTS, 10))
	}

	var resp MarketsResponse
	err := c.execute(ctx, call{
		op:     "get_markets",
		method: http.MethodGet,
		path:   "/markets",
		query:  query,
		auth:   authOptional,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get markets: %w", err)
	}

	return &resp, nil
}

// GetAllMarkets fetches all markets by paginating through results.
func (c *Client) GetAllMarkets(ctx context.Context) ([]Market, error) {
	return c.GetAllMarketsWithOptions(ctx, GetMarketsOptions{})
}

// GetAllMarketsWithOptions fetches all markets matching the given options.
// Uses DefaultPaginationTimeout if the context has no deadline.
func (c *Client) GetAllMarketsWithOptions(ctx context.Context, opts GetMarketsOptions) ([]Market, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPaginationTimeout)
		defer cancel()
	}

	var allMarkets []Market
	opts.Limit = 1000 // Max page size

	for {
		resp, err := c.GetMarkets(ctx, opts)
		if err != nil {
			return nil, err
		}

		allMarkets = append(allMarkets, resp.Markets...)

		if resp.Cursor == "" {
			break
		}
		opts.Cursor = resp.Cursor
	}

	return allMarkets, nil
}

// GetMarket fetches a single market by ticker.
func (c *Client) GetMarket(ctx context.Context, ticker string) (*Market, error) {
	if ticker == "" {
		return nil, &ValidationError{Field: "ticker", Reason: "must not be empty"}
	}

	var resp singleMarketResponse
	err := c.execute(ctx, call{
		op:     "get_market",
		method: http.MethodGet,
		path:   "/markets/" + ticker,
		auth:   authOptional,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get market %s: %w", ticker, notFound(err, "market", ticker))
	}

	return &resp.Market, nil
}

// GetOrderbook fetches the orderbook for a market. A depth of 0 requests the
// full book.
func (c *Client) GetOrderbook(ctx context.Context, ticker string, depth int) (*Orderbook, error) {
	if ticker == "" {
		return nil, &ValidationError{Field: "ticker", Reason: "must not be empty"}
	}

	query := url.Values{}
	if depth > 0 {
		query.Set("depth", strconv.Itoa(depth))
	}

	var resp orderbookResponse
	err := c.execute(ctx, call{
		op:     "get_orderbook",
		method: http.MethodGet,
		path:   "/markets/" + ticker + "/orderbook",
		query:  query,
		auth:   authOptional,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get orderbook %s: %w", ticker, notFound(err, "market", ticker))
	}

	return &resp.Orderbook, nil
}

// GetMarketHistoryOptions configures a GetMarketHistory request.
type GetMarketHistoryOptions struct {
	Limit  int
	Cursor string
	MinTS  int64
	MaxTS  int64
}

// GetMarketHistory fetches historical snapshots for a market.
func (c *Client) GetMarketHistory(ctx context.Context, ticker string, opts GetMarketHistoryOptions) (*MarketHistoryResponse, error) {
	if ticker == "" {
		return nil, &ValidationError{Field: "ticker", Reason: "must not be empty"}
	}

	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.MinTS > 0 {
		query.Set("min_ts", strconv.FormatInt(opts.MinTS, 10))
	}
	if opts.MaxTS > 0 {
		query.Set("max_ts", strconv.FormatInt(opts.MaxTS, 10))
	}

	var resp MarketHistoryResponse
	err := c.execute(ctx, call{
		op:     "get_market_history",
		method: http.MethodGet,
		path:   "/markets/" + ticker + "/history",
		query:  query,
		auth:   authOptional,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get market history %s: %w", ticker, notFound(err, "market", ticker))
	}

	return &resp, nil
}

// GetTradesOptions configures a GetTrades request.
type GetTradesOptions struct {
	Limit  int
	Cursor string
	Ticker string
	MinTS  int64
	MaxTS  int64
}

// GetTrades fetches public trades, optionally filtered by market.
func (c *Client) GetTrades(ctx context.Context, opts GetTradesOptions) (*TradesResponse, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.Ticker != "" {
		query.Set("ticker", opts.Ticker)
	}
	if opts.MinTS > 0 {
		query.Set("min_ts", strconv.FormatInt(opts.MinTS, 10))
	}
	if opts.MaxTS > 0 {
		query.Set("max_ts", strconv.FormatInt(opts.MaxTS, 10))
	}

	var resp TradesResponse
	err := c.execute(ctx, call{
		op:     "get_trades",
		method: http.MethodGet,
		path:   "/markets/trades",
		query:  query,
		auth:   authOptional,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}

	return &resp, nil
}
