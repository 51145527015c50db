package kalshi

import "fmt"

// ValidationError reports malformed local input. It is returned before any
// network I/O takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthError reports a missing, expired, or rejected session. When the remote
// rejected the session (401/403), the underlying *APIError is wrapped.
type AuthError struct {
	Reason string
	cause  error
}

func (e *AuthError) Error() string {
	return "auth: " + e.Reason
}

func (e *AuthError) Unwrap() error { return e.cause }

// TransportError wraps a network-level failure: DNS, timeout, refused or
// dropped connection. The request may or may not have reached the exchange;
// order submissions are safe to retry because they carry a client order ID.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError represents a non-success response from the Kalshi API.
type APIError struct {
	StatusCode int
	Code       string // remote error code, when the body carried one
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("kalshi api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("kalshi api error %d: %s", e.StatusCode, e.Message)
}

// DecodeError reports a success response whose body did not match the
// expected schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NotFoundError reports that the exchange has no record of the requested
// resource. It wraps the underlying *APIError.
type NotFoundError struct {
	Resource string
	ID       string
	cause    *APIError
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.cause }
