package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrEmptySessionToken is returned when the endpoint answers 2xx without a token
var ErrEmptySessionToken = errors.New("copilot session token is empty")

// StatusError is returned by Exchange when the endpoint answers non-2xx
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("copilot token exchange failed: status=%d message=%s", e.StatusCode, e.Message)
}

// SessionToken is a short-lived Copilot API token
type SessionToken struct {
	Token     string
	ExpiresAt time.Time
	RefreshIn time.Duration
}

// ExpiresIn returns the time left before the session token expires
func (s *SessionToken) ExpiresIn(now time.Time) time.Duration {
	if s.ExpiresAt.IsZero() {
		return 0
	}
	d := s.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

type exchangeResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	RefreshIn int64  `json:"refresh_in"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Exchange trades a GitHub OAuth token for a Copilot session token.
// It makes one request; callers decide when to call it again.
func (c *Client) Exchange(ctx context.Context, token string) (*SessionToken, error) {
	resp, err := c.doRequest(ctx, token, editorHeaders())
	if err != nil {
		return nil, fmt.Errorf("copilot token exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyLen))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}

	var parsed exchangeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse token exchange response: %w", err)
	}
	if strings.TrimSpace(parsed.Token) == "" {
		return nil, ErrEmptySessionToken
	}

	session := &SessionToken{
		Token:     strings.TrimSpace(parsed.Token),
		RefreshIn: time.Duration(parsed.RefreshIn) * time.Second,
	}
	if parsed.ExpiresAt > 0 {
		session.ExpiresAt = time.Unix(parsed.ExpiresAt, 0)
	}

	c.Logger.Debug("Session token issued",
		"expires_at", session.ExpiresAt,
		"refresh_in", session.RefreshIn)
	return session, nil
}

// maxMessageLen caps the bytes of a raw error body kept in a StatusError
const maxMessageLen = 200

// errorMessage extracts a short message from an error response body
func errorMessage(body []byte) string {
	var parsed errorResponse
	if json.Unmarshal(body, &parsed) == nil && strings.TrimSpace(parsed.Message) != "" {
		return strings.TrimSpace(parsed.Message)
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxMessageLen {
		cut := maxMessageLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut] + "..."
	}
	if msg == "" {
		msg = "token exchange failed"
	}
	return msg
}
