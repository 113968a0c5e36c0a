// Package api wraps all backend calls behind one HTTP client. The wrapper
// injects the bearer token from the session store on the way out, and on the
// way in clears the session when the server rejects the token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mockview/mockview/internal/client/session"
	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/logging"
)

const requestTimeout = 30 * time.Second

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client is the single egress point for backend calls.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	logger  logging.Logger

	// OnUnauthorized runs after a 401 response has cleared the session.
	// The view layer uses it to navigate back to login.
	OnUnauthorized func()
}

func New(baseURL string, store session.Store, logger logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		store:   store,
		logger:  logger,
	}
}

// do performs one request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded envelope data. One attempt, no retries.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.store.Token(ctx)
	if err != nil {
		return fmt.Errorf("session read error: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode == http.StatusUnauthorized {
		// The token is no longer usable. Both session keys go together.
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.logger.Error(ctx, "session clear failed", "error", clearErr)
		}
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return &Error{
			Status:  resp.StatusCode,
			Code:    http.StatusText(resp.StatusCode),
			Message: failureMessage(&env, "authorization required"),
			Err:     common.ErrUnauthorized,
		}
	}

	if resp.StatusCode >= 400 || (decodeErr == nil && !env.Success) {
		apiErr := &Error{
			Status:  resp.StatusCode,
			Code:    http.StatusText(resp.StatusCode),
			Message: failureMessage(&env, "request failed"),
			Err:     sentinelFor(resp.StatusCode),
		}
		c.logger.Error(ctx, "request rejected",
			"method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func failureMessage(env *envelope, fallback string) string {
	if env.Message != "" {
		return env.Message
	}
	if env.Error != "" {
		return env.Error
	}
	return fallback
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusServiceUnavailable:
		return common.ErrUnavailable
	default:
		return common.ErrInternal
	}
}
