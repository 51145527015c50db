// Package kalshi provides a typed client for the Kalshi trading REST API.
//
// Base URLs:
//   - Production: https://trading-api.kalshi.com/trade-api/v2
//   - Demo: https://demo-api.kalshi.co/trade-api/v2
//
// Authentication is session based: Login exchanges email/password for a
// bearer token that is attached to subsequent requests. A single Client is
// safe for concurrent use from multiple goroutines.
package kalshi
