package kalshi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
)

// marketFixture is a realistic single-market payload used across tests.
const marketFixture = `{
	"market": {
		"ticker": "GOVSHUTLENGTH-23DEC31-T14",
		"event_ticker": "GOVSHUTLENGTH-23DEC31",
		"market_type": "binary",
		"title": "Will the government shutdown last more than 14 days?",
		"subtitle": "More than 14 days",
		"yes_sub_title": "More than 14 days",
		"no_sub_title": "14 days or fewer",
		"status": "active",
		"category": "Politics",
		"yes_bid": 43,
		"yes_ask": 47,
		"no_bid": 53,
		"no_ask": 57,
		"last_price": 45,
		"previous_price": 44,
		"tick_size": 1,
		"notional_value": 100,
		"volume": 125000,
		"volume_24h": 8200,
		"liquidity": 950000,
		"open_interest": 42000,
		"open_time": "2023-10-01T14:00:00Z",
		"close_time": "2023-12-31T23:59:00Z",
		"can_close_early": true,
		"risk_limit_cents": 2500000
	}
}`

func TestGetMarkets(t *testing.T) {
	t.Run("basic request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/markets" {
				t.Errorf("path = %q, want %q", r.URL.Path, "/markets")
			}
			if r.Method != http.MethodGet {
				t.Errorf("method = %q, want %q", r.Method, http.MethodGet)
			}
			w.Write([]byte(`{"markets":[{"ticker":"MKT1","yes_bid":40},{"ticker":"MKT2","yes_bid":60}],"cursor":""}`))
		}))
		defer server.Close()

		c := New(server.URL)
		resp, err := c.GetMarkets(context.Background(), GetMarketsOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Markets) != 2 {
			t.Fatalf("len(Markets) = %d, want 2", len(resp.Markets))
		}
		if resp.Markets[0].Ticker != "MKT1" || resp.Markets[1].YesBid != 60 {
			t.Errorf("unexpected markets: %+v", resp.Markets)
		}
	})

	t.Run("query parameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("limit") != "50" {
				t.Errorf("limit = %q, want %q", q.Get("limit"), "50")
			}
			if q.Get("event_ticker") != "EVT1" {
				t.Errorf("event_ticker = %q, want %q", q.Get("event_ticker"), "EVT1")
			}
			if q.Get("tickers") != "MKT1,MKT2" {
				t.Errorf("tickers = %q, want %q", q.Get("tickers"), "MKT1,MKT2")
			}
			if q.Get("status") != "open" {
				t.Errorf("status = %q, want %q", q.Get("status"), "open")
			}
			if q.Get("min_close_ts") != "1700000000" {
				t.Errorf("min_close_ts = %q, want %q", q.Get("min_close_ts"), "1700000000")
			}
			w.Write([]byte(`{"markets":[],"cursor":""}`))
		}))
		defer server.Close()

		c := New(server.URL)
		_, err := c.GetMarkets(context.Background(), GetMarketsOptions{
			Limit:       50,
			EventTicker: "EVT1",
			Tickers:     []string{"MKT1", "MKT2"},
			Status:      "open",
			MinCloseTS:  1700000000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGetAllMarkets(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := requests.Add(1)
		switch r.URL.Query().Get("cursor") {
		case "":
			w.Write([]byte(`{"markets":[{"ticker":"MKT1"},{"ticker":"MKT2"}],"cursor":"page2"}`))
		case "page2":
			w.Write([]byte(`{"markets":[{"ticker":"MKT3"}],"cursor":""}`))
		default:
			t.Errorf("request %d: unexpected cursor %q", n, r.URL.Query().Get("cursor"))
		}
	}))
	defer server.Close()

	c := New(server.URL)
	markets, err := c.GetAllMarkets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(markets) != 3 {
		t.Fatalf("len(markets) = %d, want 3", len(markets))
	}
	if requests.Load() != 2 {
		t.Errorf("requests = %d, want 2", requests.Load())
	}
	if markets[2].Ticker != "MKT3" {
		t.Errorf("markets[2].Ticker = %q, want %q", markets[2].Ticker, "MKT3")
	}
}

func TestGetMarket(t *testing.T) {
	t.Run("fixture round-trip", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/markets/GOVSHUTLENGTH-23DEC31-T14" {
				t.Errorf("path = %q", r.URL.Path)
			}
			w.Write([]byte(marketFixture))
		}))
		defer server.Close()

		c := New(server.URL)
		m, err := c.GetMarket(context.Background(), "GOVSHUTLENGTH-23DEC31-T14")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if m.Ticker != "GOVSHUTLENGTH-23DEC31-T14" {
			t.Errorf("Ticker = %q", m.Ticker)
		}
		if m.EventTicker != "GOVSHUTLENGTH-23DEC31" {
			t.Errorf("EventTicker = %q", m.EventTicker)
		}
		if m.YesBid != 43 || m.YesAsk != 47 || m.NoBid != 53 || m.NoAsk != 57 {
			t.Errorf("prices = %d/%d %d/%d", m.YesBid, m.YesAsk, m.NoBid, m.NoAsk)
		}
		if m.LastPrice != 45 {
			t.Errorf("LastPrice = %d, want 45", m.LastPrice)
		}
		if m.Volume != 125000 || m.OpenInterest != 42000 {
			t.Errorf("Volume = %d, OpenInterest = %d", m.Volume, m.OpenInterest)
		}
		if m.CloseTime != "2023-12-31T23:59:00Z" {
			t.Errorf("CloseTime = %q", m.CloseTime)
		}
		if !m.CanCloseEarly {
			t.Error("CanCloseEarly = false, want true")
		}
		if m.RiskLimitCents != 2500000 {
			t.Errorf("RiskLimitCents = %d", m.RiskLimitCents)
		}
		if m.StrikeType != nil || m.SettlementValue != nil {
			t.Error("optional strike fields should be nil when absent")
		}
	})

	t.Run("unknown ticker yields NotFoundError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":"not_found","message":"market not found"}}`))
		}))
		defer server.Close()

		c := New(server.URL)
		_, err := c.GetMarket(context.Background(), "NOPE")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
		}
		if nf.Resource != "market" || nf.ID != "NOPE" {
			t.Errorf("NotFoundError = %+v", nf)
		}
	})

	t.Run("empty ticker fails before I/O", func(t *testing.T) {
		transport := &countingTransport{}
		c := New("https://api.example.com", WithHTTPClient(&http.Client{Transport: transport}))

		_, err := c.GetMarket(context.Background(), "")
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected *ValidationError, got %T: %v", err, err)
		}
		if transport.calls.Load() != 0 {
			t.Errorf("network calls = %d, want 0", transport.calls.Load())
		}
	})
}

func TestGetOrderbook(t *testing.T) {
	t.Run("with depth", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/markets/MKT1/orderbook" {
				t.Errorf("path = %q", r.URL.Path)
			}
			if r.URL.Query().Get("depth") != "5" {
				t.Errorf("depth = %q, want %q", r.URL.Query().Get("depth"), "5")
			}
			w.Write([]byte(`{"orderbook":{"yes":[[40,100],[39,250]],"no":[[55,80]]}}`))
		}))
		defer server.Close()

		c := New(server.URL)
		ob, err := c.GetOrderbook(context.Background(), "MKT1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ob.Yes) != 2 || len(ob.No) != 1 {
			t.Fatalf("levels = %d yes, %d no", len(ob.Yes), len(ob.No))
		}
		if ob.Yes[0][0] != 40 || ob.Yes[0][1] != 100 {
			t.Errorf("top yes level = %v", ob.Yes[0])
		}
	})

	t.Run("depth zero requests full book", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Has("depth") {
				t.Error("depth parameter should be omitted for full book")
			}
			w.Write([]byte(`{"orderbook":{"yes":[],"no":[]}}`))
		}))
		defer server.Close()

		c := New(server.URL)
		if _, err := c.GetOrderbook(context.Background(), "MKT1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGetMarketHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/markets/MKT1/history" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("min_ts") != "1700000000" {
			t.Errorf("min_ts = %q", r.URL.Query().Get("min_ts"))
		}
		w.Write([]byte(`{
			"ticker": "MKT1",
			"history": [
				{"yes_price":45,"yes_bid":43,"yes_ask":47,"volume":100,"open_interest":500,"ts":1700000100},
				{"yes_price":46,"yes_bid":44,"yes_ask":48,"volume":110,"open_interest":510,"ts":1700000160}
			],
			"cursor": ""
		}`))
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.GetMarketHistory(context.Background(), "MKT1", GetMarketHistoryOptions{MinTS: 1700000000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.History) != 2 {
		t.Fatalf("len(History) = %d, want 2", len(resp.History))
	}
	if resp.History[1].TS != 1700000160 || resp.History[1].YesPrice != 46 {
		t.Errorf("unexpected snapshot: %+v", resp.History[1])
	}
}

func TestGetTrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/markets/trades" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("ticker") != "MKT1" {
			t.Errorf("ticker = %q", r.URL.Query().Get("ticker"))
		}
		w.Write([]byte(`{"trades":[{"trade_id":"tr-1","ticker":"MKT1","taker_side":"yes","count":10,"yes_price":45,"no_price":55,"created_time":"2023-12-01T10:00:00Z"}],"cursor":""}`))
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.GetTrades(context.Background(), GetTradesOptions{Ticker: "MKT1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Trades) != 1 || resp.Trades[0].TakerSide != "yes" {
		t.Errorf("unexpected trades: %+v", resp.Trades)
	}
}

func TestGetEvents(t *testing.T) {
	t.Run("nested markets flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("with_nested_markets") != "true" {
				t.Errorf("with_nested_markets = %q, want %q", r.URL.Query().Get("with_nested_markets"), "true")
			}
			w.Write([]byte(`{"events":[{"event_ticker":"EVT1","title":"Event one","markets":[{"ticker":"MKT1"}]}],"cursor":""}`))
		}))
		defer server.Close()

		c := New(server.URL)
		resp, err := c.GetEvents(context.Background(), GetEventsOptions{WithNestedMarkets: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Events) != 1 || len(resp.Events[0].Markets) != 1 {
			t.Errorf("unexpected events: %+v", resp.Events)
		}
	})

	t.Run("flag omitted by default", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Has("with_nested_markets") {
				t.Error("with_nested_markets should be omitted by default")
			}
			w.Write([]byte(`{"events":[],"cursor":""}`))
		}))
		defer server.Close()

		c := New(server.URL)
		if _, err := c.GetEvents(context.Background(), GetEventsOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGetAllEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("cursor") {
		case "":
			page := `{"events":[`
			for i := 0; i < 3; i++ {
				if i > 0 {
					page += ","
				}
				page += `{"event_ticker":"EVT` + strconv.Itoa(i) + `"}`
			}
			page += `],"cursor":"more"}`
			w.Write([]byte(page))
		case "more":
			w.Write([]byte(`{"events":[{"event_ticker":"EVT3"}],"cursor":""}`))
		}
	}))
	defer server.Close()

	c := New(server.URL)
	events, err := c.GetAllEvents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("len(events) = %d, want 4", len(events))
	}
	if events[3].EventTicker != "EVT3" {
		t.Errorf("events[3].EventTicker = %q", events[3].EventTicker)
	}
}

func TestGetEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/GOVSHUTLENGTH-23DEC31" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("with_nested_markets") != "true" {
			t.Errorf("with_nested_markets = %q", r.URL.Query().Get("with_nested_markets"))
		}
		w.Write([]byte(`{"event":{"event_ticker":"GOVSHUTLENGTH-23DEC31","series_ticker":"GOVSHUTLENGTH","title":"Government shutdown length","mutually_exclusive":true,"markets":[{"ticker":"GOVSHUTLENGTH-23DEC31-T14"}]}}`))
	}))
	defer server.Close()

	c := New(server.URL)
	event, err := c.GetEvent(context.Background(), "GOVSHUTLENGTH-23DEC31", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.SeriesTicker != "GOVSHUTLENGTH" {
		t.Errorf("SeriesTicker = %q", event.SeriesTicker)
	}
	if !event.MutuallyExclusive {
		t.Error("MutuallyExclusive = false, want true")
	}
	if len(event.Markets) != 1 {
		t.Errorf("len(Markets) = %d, want 1", len(event.Markets))
	}
}

func TestGetSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/series/GOVSHUTLENGTH" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"series":{"ticker":"GOVSHUTLENGTH","title":"Government shutdown length","frequency":"one-off","settlement_sources":[{"name":"Congress.gov","url":"https://www.congress.gov"}]}}`))
	}))
	defer server.Close()

	c := New(server.URL)
	series, err := c.GetSeries(context.Background(), "GOVSHUTLENGTH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Ticker != "GOVSHUTLENGTH" || series.Frequency != "one-off" {
		t.Errorf("unexpected series: %+v", series)
	}
	if len(series.SettlementSources) != 1 || series.SettlementSources[0].Name != "Congress.gov" {
		t.Errorf("unexpected settlement sources: %+v", series.SettlementSources)
	}
}

func TestGetExchangeStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exchange/status" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"exchange_active":true,"trading_active":false,"exchange_estimated_resume_time":"2023-12-01T14:00:00Z"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	status, err := c.GetExchangeStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.ExchangeActive || status.TradingActive {
		t.Errorf("unexpected status: %+v", status)
	}
	if status.EstimatedResumeTime != "2023-12-01T14:00:00Z" {
		t.Errorf("EstimatedResumeTime = %q", status.EstimatedResumeTime)
	}
}

func TestGetExchangeSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exchange/schedule" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"schedule":{
			"standard_hours":{
				"monday":{"open_time":"08:00","close_time":"03:00"},
				"saturday":{"open_time":"10:00","close_time":"03:00"}
			},
			"maintenance_windows":["2023-12-02T06:00:00Z/2023-12-02T08:00:00Z"]
		}}`))
	}))
	defer server.Close()

	c := New(server.URL)
	schedule, err := c.GetExchangeSchedule(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedule.StandardHours.Monday.OpenTime != "08:00" {
		t.Errorf("Monday.OpenTime = %q", schedule.StandardHours.Monday.OpenTime)
	}
	if len(schedule.MaintenanceWindows) != 1 {
		t.Errorf("len(MaintenanceWindows) = %d, want 1", len(schedule.MaintenanceWindows))
	}
}
