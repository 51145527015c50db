package kalshi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/rickgao/kalshi-trade/internal/metrics"
)

// GetBalance fetches the member's available balance in cents.
func (c *Client) GetBalance(ctx context.Context) (int64, error) {
	var resp balanceResponse
	err := c.execute(ctx, call{
		op:     "get_balance",
		method: http.MethodGet,
		path:   "/portfolio/balance",
		auth:   authRequired,
	}, &resp)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return resp.Balance, nil
}

// GetOrdersOptions configures a GetOrders request.
type GetOrdersOptions struct {
	Ticker      string
	EventTicker string
	Status      string
	MinTS       int64
	MaxTS       int64
	Limit       int
	Cursor      string
}

// GetOrders fetches a page of the member's orders.
func (c *Client) GetOrders(ctx context.Context, opts GetOrdersOptions) (*OrdersResponse, error) {
	query := url.Values{}
	if opts.Ticker != "" {
		query.Set("ticker", opts.Ticker)
	}
	if opts.EventTicker != "" {
		query.Set("event_ticker", opts.EventTicker)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.MinTS > 0 {
		query.Set("min_ts", strconv.FormatInt(opts.MinTS, 10))
	}
	if opts.MaxTS > 0 {
		query.Set("max_ts", strconv.FormatInt(opts.MaxTS, 10))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	var resp OrdersResponse
	err := c.execute(ctx, call{
		op:     "get_orders",
		method: http.MethodGet,
		path:   "/portfolio/orders",
		query:  query,
		auth:   authRequired,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return &resp, nil
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, &ValidationError{Field: "order_id", Reason: "must not be empty"}
	}

	var resp singleOrderResponse
	err := c.execute(ctx, call{
		op:     "get_order",
		method: http.MethodGet,
		path:   "/portfolio/orders/" + orderID,
		auth:   authRequired,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, notFound(err, "order", orderID))
	}

	return &resp.Order, nil
}

// OrderRequest describes an order to submit. ClientOrderID is the
// idempotency token: leave it empty to have CreateOrder generate one, or set
// it to make a retried submission safe against duplication.
type OrderRequest struct {
	Ticker        string    `json:"ticker"`
	ClientOrderID string    `json:"client_order_id"`
	Side          Side      `json:"side"`
	Action        Action    `json:"action"`
	Type          OrderType `json:"type"`
	Count         int       `json:"count"`

	// Limit pricing, in cents. Exactly one must be set for limit orders;
	// both must be nil for market orders.
	YesPrice *int `json:"yes_price,omitempty"`
	NoPrice  *int `json:"no_price,omitempty"`

	// Optional expiration (unix seconds). Unset means good-till-canceled.
	ExpirationTS *int64 `json:"expiration_ts,omitempty"`
}

// Validate checks the request locally. It is called by CreateOrder before
// any network I/O.
func (r *OrderRequest) Validate() error {
	if r.Ticker == "" {
		return &ValidationError{Field: "ticker", Reason: "must not be empty"}
	}
	if r.Count <= 0 {
		return &ValidationError{Field: "count", Reason: "must be positive"}
	}
	switch r.Side {
	case SideYes, SideNo:
	default:
		return &ValidationError{Field: "side", Reason: fmt.Sprintf("must be %q or %q", SideYes, SideNo)}
	}
	switch r.Action {
	case ActionBuy, ActionSell:
	default:
		return &ValidationError{Field: "action", Reason: fmt.Sprintf("must be %q or %q", ActionBuy, ActionSell)}
	}

	switch r.Type {
	case OrderTypeLimit:
		if (r.YesPrice == nil) == (r.NoPrice == nil) {
			return &ValidationError{Field: "yes_price/no_price", Reason: "limit orders take exactly one of yes_price or no_price"}
		}
		price := r.YesPrice
		if price == nil {
			price = r.NoPrice
		}
		if *price < 1 || *price > 99 {
			return &ValidationError{Field: "price", Reason: "must be between 1 and 99 cents"}
		}
	case OrderTypeMarket:
		if r.YesPrice != nil || r.NoPrice != nil {
			return &ValidationError{Field: "yes_price/no_price", Reason: "market orders take no price bound"}
		}
	default:
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("must be %q or %q", OrderTypeMarket, OrderTypeLimit)}
	}

	return nil
}

// CreateOrder validates and submits an order. When the caller did not supply
// a ClientOrderID, a fresh UUID is attached; a caller-supplied token is sent
// unchanged so retries stay idempotent. The exchange's record of the order,
// including the echoed client order id, is returned.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.ClientOrderID == "" {
		req.ClientOrderID = uuid.NewString()
	}

	var resp singleOrderResponse
	err := c.execute(ctx, call{
		op:     "create_order",
		method: http.MethodPost,
		path:   "/portfolio/orders",
		body:   req,
		auth:   authRequired,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	metrics.OrdersCreated.Inc()
	c.logger.Debug("order created",
		"order_id", resp.Order.OrderID,
		"client_order_id", resp.Order.ClientOrderID,
		"ticker", resp.Order.Ticker,
	)

	return &resp.Order, nil
}

// CancelOrder cancels a resting order. It returns the exchange's final record
// of the order and the number of contracts removed from the book.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*Order, int, error) {
	if orderID == "" {
		return nil, 0, &ValidationError{Field: "order_id", Reason: "must not be empty"}
	}

	var resp cancelOrderResponse
	err := c.execute(ctx, call{
		op:     "cancel_order",
		method: http.MethodDelete,
		path:   "/portfolio/orders/" + orderID,
		auth:   authRequired,
	}, &resp)
	if err != nil {
		return nil, 0, fmt.Errorf("cancel order %s: %w", orderID, notFound(err, "order", orderID))
	}

	return &resp.Order, resp.ReducedBy, nil
}

// DecreaseOrderRequest reduces a resting order's size. Exactly one of
// ReduceBy and ReduceTo must be set.
type DecreaseOrderRequest struct {
	ReduceBy *int `json:"reduce_by,omitempty"`
	ReduceTo *int `json:"reduce_to,omitempty"`
}

// DecreaseOrder shrinks a resting order without losing queue position for the
// remaining contracts.
func (c *Client) DecreaseOrder(ctx context.Context, orderID string, req DecreaseOrderRequest) (*Order, error) {
	if orderID == "" {
		return nil, &ValidationError{Field: "order_id", Reason: "must not be empty"}
	}
	if (req.ReduceBy == nil) == (req.ReduceTo == nil) {
		return nil, &ValidationError{Field: "reduce_by/reduce_to", Reason: "exactly one of reduce_by or reduce_to must be set"}
	}
	if req.ReduceBy != nil && *req.ReduceBy <= 0 {
		return nil, &ValidationError{Field: "reduce_by", Reason: "must be positive"}
	}
	if req.ReduceTo != nil && *req.ReduceTo < 0 {
		return nil, &ValidationError{Field: "reduce_to", Reason: "must not be negative"}
	}

	var resp singleOrderResponse
	err := c.execute(ctx, call{
		op:     "decrease_order",
		method: http.MethodPost,
		path:   "/portfolio/orders/" + orderID + "/decrease",
		body:   req,
		auth:   authRequired,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("decrease order %s: %w", orderID, notFound(err, "order", orderID))
	}

	return &resp.Order, nil
}

// GetFillsOptions configures a GetFills request.
type GetFillsOptions struct {
	Ticker  string
	OrderID string
	MinTS   int64
	MaxTS   int64
	Limit   int
	Cursor  string
}

// GetFills fetches a page of the member's fills.
func (c *Client) GetFills(ctx context.Context, opts GetFillsOptions) (*FillsResponse, error) {
	query := url.Values{}
	if opts.Ticker != "" {
		query.Set("ticker", opts.Ticker)
	}
	if opts.OrderID != "" {
		query.Set("order_id", opts.OrderID)
	}
	if opts.MinTS > 0 {
		query.Set("min_ts", strconv.FormatInt(opts.MinTS, 10))
	}
	if opts.MaxTS > 0 {
		query.Set("max_ts", strconv.FormatInt(opts.MaxTS, 10))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	var resp FillsResponse
	err := c.execute(ctx, call{
		op:     "get_fills",
		method: http.MethodGet,
		path:   "/portfolio/fills",
		query:  query,
		auth:   authRequired,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get fills: %w", err)
	}

	return &resp, nil
}

// GetPositionsOptions configures a GetPositions request.
type GetPositionsOptions struct {
	Ticker           string
	EventTicker      string
	SettlementStatus string
	Limit            int
	Cursor           string
}

// GetPositions fetches a page of the member's market and event positions.
func (c *Client) GetPositions(ctx context.Context, opts GetPositionsOptions) (*PositionsResponse, error) {
	query := url.Values{}
	if opts.Ticker != "" {
		query.Set("ticker", opts.Ticker)
	}
	if opts.EventTicker != "" {
		query.Set("event_ticker", opts.EventTicker)
	}
	if opts.SettlementStatus != "" {
		query.Set("settlement_status", opts.SettlementStatus)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	var resp PositionsResponse
	err := c.execute(ctx, call{
		op:     "get_positions",
		method: http.MethodGet,
		path:   "/portfolio/positions",
		query:  query,
		auth:   authRequired,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}

	return &resp, nil
}
