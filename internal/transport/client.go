// Package transport is the single HTTP client every controller shares.
// The session cookie travels ambiently through the cookie jar, and an
// authentication-failure response from any endpoint fires one global
// hook before the error reaches the caller.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hacsa-board/hacsa-cli/internal/common"
	pkglogger "github.com/hacsa-board/hacsa-cli/pkg/logger"
)

// Config configures the shared client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client wraps net/http with JSON codec, request-id logging and the
// global auth-failure reaction. It holds no per-request state, so all
// controllers may share one instance.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	onAuthFailure func()
}

// New builds a client with a fresh cookie jar.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if _, err := url.Parse(base); err != nil || base == "" {
		return nil, fmt.Errorf("invalid server url %q", cfg.BaseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}, nil
}

// SetAuthFailureHook installs the reaction to any 401 response.
// Must be called during wiring, before the client is used.
func (c *Client) SetAuthFailureHook(fn func()) {
	c.onAuthFailure = fn
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	requestID := uuid.NewString()
	log := pkglogger.WithRequestID(requestID)

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request done")

	if resp.StatusCode >= 400 {
		apiErr := decodeError(resp.StatusCode, respBody)
		// Identity must be gone before the rejection reaches the caller.
		if resp.StatusCode == http.StatusUnauthorized && c.onAuthFailure != nil {
			c.onAuthFailure()
		}
		log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("request rejected")
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// errorPayload accepts both the nested {"error":{...}} envelope and
// the flat {"message": "..."} shape the board server uses.
type errorPayload struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func decodeError(status int, body []byte) *common.APIError {
	apiErr := &common.APIError{Status: status}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != nil {
			apiErr.Code = payload.Error.Code
			apiErr.Message = payload.Error.Message
		} else {
			apiErr.Message = payload.Message
		}
	}

	switch status {
	case http.StatusUnauthorized:
		apiErr.Err = common.ErrUnauthorized
	case http.StatusForbidden:
		apiErr.Err = common.ErrForbidden
	case http.StatusNotFound:
		apiErr.Err = common.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict:
		apiErr.Err = common.ErrInvalidInput
	}
	return apiErr
}
