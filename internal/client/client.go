package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTokenURL is the Copilot token exchange endpoint
	DefaultTokenURL = "https://api.github.com/copilot_internal/v2/token"

	// DefaultUserAgent is sent on every request
	DefaultUserAgent = "copilot-authctl"

	// DefaultTimeout bounds a single request when the caller's context has no deadline
	DefaultTimeout = 15 * time.Second

	editorVersion       = "vscode/1.96.0"
	editorPluginVersion = "copilot-chat/0.26.7"
	githubAPIVersion    = "2025-04-01"

	maxBodyLen = 2 << 20
)

// Client wraps an HTTP client for the Copilot token endpoint
type Client struct {
	TokenURL   string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates a new API client
func NewClient(tokenURL, userAgent string, timeout time.Duration, logger *slog.Logger) *Client {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		TokenURL:  tokenURL,
		UserAgent: userAgent,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Logger: logger,
	}
}

// doRequest executes a GET against the token endpoint with bearer auth.
// extra headers are added on top of Authorization and User-Agent.
func (c *Client) doRequest(ctx context.Context, token string, extra http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.TokenURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.UserAgent)
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	requestID := uuid.New().String()
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Debug("Request failed",
			"request_id", requestID,
			"url", c.TokenURL,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	c.Logger.Debug("Request completed",
		"request_id", requestID,
		"url", c.TokenURL,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

func editorHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Editor-Version", editorVersion)
	h.Set("Editor-Plugin-Version", editorPluginVersion)
	h.Set("X-GitHub-Api-Version", githubAPIVersion)
	return h
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
