package kalshi

import (
	"context"
	"net/http"
)

// Session is the credential state returned by Login. It is immutable; Login
// installs a new one and Logout removes it.
type Session struct {
	Token    string
	MemberID string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	MemberID string `json:"member_id"`
	Token    string `json:"token"`
}

// Login exchanges email and password for a session token and installs it on
// the client. Invalid credentials surface as *AuthError.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	var resp loginResponse
	err := c.execute(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/login",
		body:   loginRequest{Email: email, Password: password},
		auth:   authNone,
	}, &resp)
	if err != nil {
		return nil, err
	}

	s := &Session{Token: resp.Token, MemberID: resp.MemberID}
	c.session.Store(s)

	c.logger.Debug("logged in", "member_id", s.MemberID)
	return s, nil
}

// Logout invalidates the remote session and clears the local one. Calling
// Logout while logged out is a no-op and performs no network I/O.
func (c *Client) Logout(ctx context.Context) error {
	if c.session.Load() == nil {
		return nil
	}

	// Clear the local session even if the remote call fails; a token the
	// exchange may still honor must not be reused after Logout returns.
	defer c.session.Store(nil)

	err := c.execute(ctx, call{
		op:     "logout",
		method: http.MethodPost,
		path:   "/logout",
		auth:   authRequired,
	}, nil)
	if err != nil {
		return err
	}

	c.logger.Debug("logged out")
	return nil
}

// Session returns a snapshot of the current session, or nil when logged out.
func (c *Client) Session() *Session {
	return c.session.Load()
}
