// Package client implements a typed REST client for the canopy content
// server.
//
// The client exposes one method per server operation and returns typed
// results. Errors are wrapped in APIError with sentinel errors for
// errors.Is checks. The client performs no retries: every failure is
// terminal for the calling invocation and reported once.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Client talks to a canopy content server over HTTP. Safe for
// concurrent use, though CLI invocations have exactly one logical
// thread of control.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	username  string
	password  string
	userAgent string
	limiter   *rate.Limiter
}

// Ensure Client implements the API interfaces.
var (
	_ RepoAPI         = (*Client)(nil)
	_ DistributionAPI = (*Client)(nil)
	_ StatusAPI       = (*Client)(nil)
)

// New creates a client from the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, &ConfigError{Field: "BaseURL", Message: "invalid URL: " + err.Error()}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		username:  cfg.Username,
		password:  cfg.Password,
		userAgent: userAgent,
	}

	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return c, nil
}

// get performs a GET request against path, decoding the JSON response
// body into out. Query may be nil.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &APIError{Op: op, Path: path, Err: err}
		}
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &APIError{Op: op, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Op: op, Path: path, Err: fmt.Errorf("%w: %v", ErrServerUnavailable, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(op, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: op, Path: path, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// statusError maps a non-200 response to an APIError carrying the
// matching sentinel error and any server-supplied message.
func (c *Client) statusError(op, path string, resp *http.Response) error {
	apiErr := &APIError{Op: op, Path: path, StatusCode: resp.StatusCode}

	// The server reports failures as {"error": "..."} bodies.
	var body struct {
		Error string `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	apiErr.Message = body.Error

	switch resp.StatusCode {
	case http.StatusNotFound:
		apiErr.Err = ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		apiErr.Err = ErrUnauthorized
	case http.StatusTooManyRequests:
		apiErr.Err = ErrThrottled
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusInternalServerError:
		apiErr.Err = ErrServerUnavailable
	default:
		apiErr.Err = fmt.Errorf("unexpected status %s", resp.Status)
	}

	return apiErr
}
