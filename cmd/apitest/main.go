// Command apitest exercises the client against the Kalshi demo API.
//
// Credentials come from KALSHI_EMAIL / KALSHI_PASSWORD (a .env file is
// loaded when present). Pass -trade to place and cancel a 1-cent limit
// order on the first open market.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/rickgao/kalshi-trade/internal/config"
	"github.com/rickgao/kalshi-trade/internal/version"
	"github.com/rickgao/kalshi-trade/kalshi"
)

func main() {
	configPath := flag.String("config", "configs/example.yaml", "path to config file")
	trade := flag.Bool("trade", false, "place and cancel a 1-cent limit order")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting apitest",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load .env before config expansion so ${KALSHI_EMAIL} etc. resolve.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"environment", cfg.Environment,
		"api_url", cfg.API.BaseURL,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Serve Prometheus metrics
	go func() {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.Handler())
		addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
		logger.Info("serving metrics", "addr", addr, "path", cfg.Metrics.Path)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	client := kalshi.New(cfg.API.BaseURL,
		kalshi.WithTimeout(cfg.API.Timeout),
		kalshi.WithLogger(logger),
		kalshi.WithUserAgent(cfg.API.UserAgent),
	)

	if err := run(ctx, logger, client, cfg, *trade); err != nil {
		logger.Error("apitest failed", "error", err)
		os.Exit(1)
	}

	logger.Info("all checks passed")
}

func run(ctx context.Context, logger *slog.Logger, client *kalshi.Client, cfg *config.Config, trade bool) error {
	session, err := client.Login(ctx, cfg.Credentials.Email, cfg.Credentials.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	logger.Info("logged in", "member_id", session.MemberID)
	defer func() {
		logoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Logout(logoutCtx); err != nil {
			logger.Warn("logout failed", "error", err)
		}
	}()

	// Fan out independent reads over the shared client.
	g, gctx := errgroup.WithContext(ctx)

	var status *kalshi.ExchangeStatus
	g.Go(func() error {
		var err error
		status, err = client.GetExchangeStatus(gctx)
		return err
	})

	var markets *kalshi.MarketsResponse
	g.Go(func() error {
		var err error
		markets, err = client.GetMarkets(gctx, kalshi.GetMarketsOptions{Limit: 5, Status: "open"})
		return err
	})

	var balance int64
	g.Go(func() error {
		var err error
		balance, err = client.GetBalance(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("exchange status",
		"exchange_active", status.ExchangeActive,
		"trading_active", status.TradingActive,
	)
	logger.Info("balance", "cents", balance, "dollars", kalshi.CentsToDollars(int(balance)))
	for _, m := range markets.Markets {
		logger.Info("market",
			"ticker", m.Ticker,
			"title", m.Title,
			"yes_bid", m.YesBid,
			"yes_ask", m.YesAsk,
		)
	}

	if len(markets.Markets) > 0 {
		ticker := markets.Markets[0].Ticker

		ob, err := client.GetOrderbook(ctx, ticker, 5)
		if err != nil {
			return fmt.Errorf("get orderbook: %w", err)
		}
		logger.Info("orderbook", "ticker", ticker, "yes_levels", len(ob.Yes), "no_levels", len(ob.No))

		if trade {
			if err := placeAndCancel(ctx, logger, client, ticker); err != nil {
				return err
			}
		}
	}

	return nil
}

func placeAndCancel(ctx context.Context, logger *slog.Logger, client *kalshi.Client, ticker string) error {
	price := 1
	order, err := client.CreateOrder(ctx, kalshi.OrderRequest{
		Ticker:   ticker,
		Side:     kalshi.SideYes,
		Action:   kalshi.ActionBuy,
		Type:     kalshi.OrderTypeLimit,
		Count:    1,
		YesPrice: &price,
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	logger.Info("order placed",
		"order_id", order.OrderID,
		"client_order_id", order.ClientOrderID,
		"status", order.Status,
	)

	canceled, reducedBy, err := client.CancelOrder(ctx, order.OrderID)
	if err != nil {
		var nf *kalshi.NotFoundError
		if errors.As(err, &nf) {
			// Filled or expired before the cancel landed.
			logger.Warn("order already gone", "order_id", order.OrderID)
			return nil
		}
		return fmt.Errorf("cancel order: %w", err)
	}
	logger.Info("order canceled",
		"order_id", canceled.OrderID,
		"reduced_by", reducedBy,
	)

	return nil
}
