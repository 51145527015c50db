package kalshi

// Side selects the yes or no contract of a market.
type Side string

const (
	SideYes Side = "yes"
	SideNo  Side = "no"
)

// Action is the direction of an order.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// OrderType distinguishes market and limit orders.
type OrderType string

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

// Order statuses reported by the exchange.
const (
	OrderStatusResting  = "resting"
	OrderStatusCanceled = "canceled"
	OrderStatusExecuted = "executed"
	OrderStatusPending  = "pending"
)

// Market is a tradeable binary contract. Prices are in cents.
type Market struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	MarketType  string `json:"market_type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	YesSubTitle string `json:"yes_sub_title"`
	NoSubTitle  string `json:"no_sub_title"`
	Status      string `json:"status"`
	Result      string `json:"result"`
	Category    string `json:"category"`

	YesBid        int `json:"yes_bid"`
	YesAsk        int `json:"yes_ask"`
	NoBid         int `json:"no_bid"`
	NoAsk         int `json:"no_ask"`
	LastPrice     int `json:"last_price"`
	PreviousPrice int `json:"previous_price"`
	TickSize      int `json:"tick_size"`
	NotionalValue int `json:"notional_value"`

	Volume       int64 `json:"volume"`
	Volume24h    int64 `json:"volume_24h"`
	Liquidity    int64 `json:"liquidity"`
	OpenInterest int64 `json:"open_interest"`

	// Timestamps (ISO 8601)
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	ExpirationTime string `json:"expiration_time,omitempty"`

	CanCloseEarly   bool     `json:"can_close_early"`
	ExpirationValue string   `json:"expiration_value,omitempty"`
	RiskLimitCents  int64    `json:"risk_limit_cents,omitempty"`
	StrikeType      *string  `json:"strike_type,omitempty"`
	FloorStrike     *float64 `json:"floor_strike,omitempty"`
	CapStrike       *float64 `json:"cap_strike,omitempty"`
	SettlementValue *int     `json:"settlement_value,omitempty"`
}

// Event groups related markets (e.g. one election).
type Event struct {
	EventTicker       string  `json:"event_ticker"`
	SeriesTicker      string  `json:"series_ticker"`
	Title             string  `json:"title"`
	SubTitle          string  `json:"sub_title"`
	Category          string  `json:"category"`
	MutuallyExclusive bool    `json:"mutually_exclusive"`
	StrikeDate        *string `json:"strike_date,omitempty"`
	StrikePeriod      *string `json:"strike_period,omitempty"`

	// Populated only when nested markets were requested.
	Markets []Market `json:"markets,omitempty"`
}

// Series is a recurring family of events.
type Series struct {
	Ticker            string             `json:"ticker"`
	Title             string             `json:"title"`
	Category          string             `json:"category"`
	Frequency         string             `json:"frequency"`
	Tags              []string           `json:"tags"`
	SettlementSources []SettlementSource `json:"settlement_sources"`
	ContractURL       string             `json:"contract_url"`
}

// SettlementSource names a data source used to settle a series.
type SettlementSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Orderbook holds resting liquidity as [price_cents, quantity] levels.
type Orderbook struct {
	Yes [][]int `json:"yes"`
	No  [][]int `json:"no"`
}

// Snapshot is one point of market history.
type Snapshot struct {
	YesPrice     int   `json:"yes_price"`
	YesBid       int   `json:"yes_bid"`
	YesAsk       int   `json:"yes_ask"`
	NoBid        int   `json:"no_bid"`
	NoAsk        int   `json:"no_ask"`
	Volume       int   `json:"volume"`
	OpenInterest int   `json:"open_interest"`
	TS           int64 `json:"ts"`
}

// Trade is a public execution between two members.
type Trade struct {
	TradeID     string `json:"trade_id"`
	Ticker      string `json:"ticker"`
	TakerSide   string `json:"taker_side"`
	Count       int    `json:"count"`
	YesPrice    int    `json:"yes_price"`
	NoPrice     int    `json:"no_price"`
	CreatedTime string `json:"created_time"`
}

// Order is the exchange's record of an order, echoed on creation and
// returned by the portfolio order queries.
type Order struct {
	OrderID       string    `json:"order_id"`
	ClientOrderID string    `json:"client_order_id"`
	Ticker        string    `json:"ticker"`
	Status        string    `json:"status"`
	Action        Action    `json:"action"`
	Side          Side      `json:"side"`
	Type          OrderType `json:"type"`
	YesPrice      int       `json:"yes_price"`
	NoPrice       int       `json:"no_price"`

	TakerFillCount   int    `json:"taker_fill_count,omitempty"`
	TakerFillCost    int    `json:"taker_fill_cost,omitempty"`
	MakerFillCount   int    `json:"maker_fill_count,omitempty"`
	RemainingCount   int    `json:"remaining_count,omitempty"`
	QueuePosition    int    `json:"queue_position,omitempty"`
	PlaceCount       int    `json:"place_count,omitempty"`
	DecreaseCount    int    `json:"decrease_count,omitempty"`
	TakerFees        int    `json:"taker_fees,omitempty"`
	OrderGroupID     string `json:"order_group_id,omitempty"`
	CreatedTime      string `json:"created_time,omitempty"`
	LastUpdateTime   string `json:"last_update_time,omitempty"`
	ExpirationTime   string `json:"expiration_time,omitempty"`
	CloseCancelCount int    `json:"close_cancel_count,omitempty"`
}

// Fill is one (partial or full) execution of an order.
type Fill struct {
	TradeID     string `json:"trade_id"`
	OrderID     string `json:"order_id"`
	Ticker      string `json:"ticker"`
	Side        Side   `json:"side"`
	Action      Action `json:"action"`
	Count       int    `json:"count"`
	YesPrice    int    `json:"yes_price"`
	NoPrice     int    `json:"no_price"`
	IsTaker     bool   `json:"is_taker"`
	CreatedTime string `json:"created_time"`
}

// MarketPosition is the member's net position in a single market.
type MarketPosition struct {
	Ticker             string `json:"ticker"`
	Position           int    `json:"position"`
	MarketExposure     int    `json:"market_exposure"`
	RealizedPnl        int    `json:"realized_pnl"`
	TotalTraded        int    `json:"total_traded"`
	RestingOrdersCount int    `json:"resting_orders_count"`
	FeesPaid           int    `json:"fees_paid"`
}

// EventPosition aggregates positions across one event's markets.
type EventPosition struct {
	EventTicker       string `json:"event_ticker"`
	EventExposure     int    `json:"event_exposure"`
	RealizedPnl       int    `json:"realized_pnl"`
	TotalCost         int    `json:"total_cost"`
	RestingOrderCount int    `json:"resting_order_count"`
	FeesPaid          int    `json:"fees_paid"`
}

// ExchangeStatus from GET /exchange/status.
type ExchangeStatus struct {
	ExchangeActive      bool   `json:"exchange_active"`
	TradingActive       bool   `json:"trading_active"`
	EstimatedResumeTime string `json:"exchange_estimated_resume_time,omitempty"`
}

// Schedule from GET /exchange/schedule.
type Schedule struct {
	StandardHours      StandardHours `json:"standard_hours"`
	MaintenanceWindows []string      `json:"maintenance_windows"`
}

// StandardHours lists trading hours per weekday.
type StandardHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule is one weekday's open and close times.
type DaySchedule struct {
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// -----------------------------------------------------------------------------
// Response envelopes
// -----------------------------------------------------------------------------

// MarketsResponse from GET /markets.
type MarketsResponse struct {
	Markets []Market `json:"markets"`
	Cursor  string   `json:"cursor"`
}

type singleMarketResponse struct {
	Market Market `json:"market"`
}

// EventsResponse from GET /events.
type EventsResponse struct {
	Events []Event `json:"events"`
	Cursor string  `json:"cursor"`
}

type singleEventResponse struct {
	Event Event `json:"event"`
}

type seriesResponse struct {
	Series Series `json:"series"`
}

type orderbookResponse struct {
	Orderbook Orderbook `json:"orderbook"`
}

// MarketHistoryResponse from GET /markets/{ticker}/history.
type MarketHistoryResponse struct {
	Ticker  string     `json:"ticker"`
	History []Snapshot `json:"history"`
	Cursor  string     `json:"cursor"`
}

// TradesResponse from GET /markets/trades.
type TradesResponse struct {
	Trades []Trade `json:"trades"`
	Cursor string  `json:"cursor"`
}

type scheduleResponse struct {
	Schedule Schedule `json:"schedule"`
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

// OrdersResponse from GET /portfolio/orders.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
	Cursor string  `json:"cursor"`
}

type singleOrderResponse struct {
	Order Order `json:"order"`
}

type cancelOrderResponse struct {
	Order     Order `json:"order"`
	ReducedBy int   `json:"reduced_by"`
}

// FillsResponse from GET /portfolio/fills.
type FillsResponse struct {
	Fills  []Fill `json:"fills"`
	Cursor string `json:"cursor"`
}

// PositionsResponse from GET /portfolio/positions.
type PositionsResponse struct {
	EventPositions  []EventPosition  `json:"event_positions"`
	MarketPositions []MarketPosition `json:"market_positions"`
	Cursor          string           `json:"cursor"`
}
