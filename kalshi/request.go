package kalshi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rickgao/kalshi-trade/internal/metrics"
)

// authMode controls whether a call requires, may use, or never sends the
// session token.
type authMode int

const (
	authNone authMode = iota
	authOptional
	authRequired
)

// call describes one endpoint invocation consumed by the shared execute path.
type call struct {
	op     string // stable endpoint name for logging and metrics
	method string
	path   string
	query  url.Values
	body   any
	auth   authMode
}

// errorBody is the structured error payload the exchange returns on 4xx/5xx.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// execute builds, sends, and decodes one API request. result may be nil for
// calls whose response body is discarded.
func (c *Client) execute(ctx context.Context, cl call, result any) error {
	token, err := c.token(cl.auth)
	if err != nil {
		return err
	}

	fullURL := c.baseURL + cl.path
	if len(cl.query) > 0 {
		fullURL += "?" + cl.query.Encode()
	}

	var reqBody io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(cl.op, "transport_error").Inc()
		c.logger.Debug("request failed", "op", cl.op, "error", err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(cl.op, "transport_error").Inc()
		return &TransportError{Err: err}
	}

	metrics.RequestsTotal.WithLabelValues(cl.op, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDuration.WithLabelValues(cl.op).Observe(time.Since(start).Seconds())

	if resp.StatusCode >= 400 {
		return c.apiError(resp.StatusCode, body)
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}

// token resolves the session token for the given auth mode. A required mode
// with no live session fails here, before any network I/O.
func (c *Client) token(mode authMode) (string, error) {
	if mode == authNone {
		return "", nil
	}

	s := c.session.Load()
	if s == nil {
		if mode == authRequired {
			return "", &AuthError{Reason: "not logged in"}
		}
		return "", nil
	}
	return s.Token, nil
}

// apiError maps a non-success status to the error taxonomy. The structured
// error payload is parsed when present; 401/403 become *AuthError.
func (c *Client) apiError(status int, body []byte) error {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       body,
	}

	var payload errorBody
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		apiErr.Code = payload.Error.Code
		apiErr.Message = payload.Error.Message
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &AuthError{Reason: apiErr.Message, cause: apiErr}
	}

	return apiErr
}

// notFound converts a 404 *APIError into a *NotFoundError for single-resource
// operations. Other errors pass through unchanged.
func notFound(err error, resource, id string) error {
	if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: resource, ID: id, cause: apiErr}
	}
	return err
}
