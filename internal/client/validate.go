package client

import (
	"context"
	"fmt"
	"io"
)

// Validate reports whether token has active Copilot access.
//
// Any 2xx from the token endpoint means valid. Other statuses return false
// with a nil error. A non-nil error means the question could not be answered
// (network failure, timeout, cancelled context) and must not be read as
// "invalid".
func (c *Client) Validate(ctx context.Context, token string) (bool, error) {
	resp, err := c.doRequest(ctx, token, nil)
	if err != nil {
		return false, fmt.Errorf("copilot token validation request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyLen))

	valid := isSuccess(resp.StatusCode)
	if !valid {
		c.Logger.Info("Token rejected by Copilot", "status_code", resp.StatusCode)
	}
	return valid, nil
}
