package kalshi

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// Base URLs for the two trading environments.
const (
	LiveBaseURL = "https://trading-api.kalshi.com/trade-api/v2"
	DemoBaseURL = "https://demo-api.kalshi.co/trade-api/v2"
)

// DefaultPaginationTimeout bounds GetAll* helpers when the caller's context
// carries no deadline.
const DefaultPaginationTimeout = 10 * time.Minute

// Client provides access to the Kalshi trading REST API.
//
// The session token is the Client's only mutable state. Login and Logout
// replace it wholesale; concurrent calls observe either the old or the new
// session, never a partial one.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	userAgent  string

	session atomic.Pointer[Session]
}

// Option configures a Client.
type Option func(*Client)

// New creates a REST API client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
