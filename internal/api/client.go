// Package api is the HTTP client for the CEREBRO backend. The dashboard
// treats the backend as an external collaborator: it fetches projects,
// intelligence, and briefings, and never writes.
//
// Failures are classified (see errors.go) so callers and the internal retry
// loop can distinguish a flaky backend from a bad request.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cerebro/internal/intel"
	"cerebro/internal/jsonutil"
)

const defaultTimeout = 10 * time.Second

// Client talks to the backend API.
type Client struct {
	base  *url.URL
	http  *http.Client
	retry RetryConfig
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client; used to install an
// instrumented transport or a test double.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRetry overrides the retry policy.
func WithRetry(rc RetryConfig) Option {
	return func(c *Client) { c.retry = rc }
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}
	c := &Client{
		base:  u,
		http:  &http.Client{Timeout: defaultTimeout},
		retry: DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Status fetches the ecosystem summary.
func (c *Client) Status(ctx context.Context) (intel.EcosystemStatus, error) {
	return getObject[intel.EcosystemStatus](ctx, c, "/api/status")
}

// Projects lists all tracked projects.
func (c *Client) Projects(ctx context.Context) ([]intel.Project, error) {
	return getArray[intel.Project](ctx, c, "/api/projects")
}

// Project fetches one project by name.
func (c *Client) Project(ctx context.Context, name string) (intel.Project, error) {
	return getObject[intel.Project](ctx, c, "/api/projects/"+url.PathEscape(name))
}

// Intelligence lists recent intelligence items.
func (c *Client) Intelligence(ctx context.Context) ([]intel.Item, error) {
	return getArray[intel.Item](ctx, c, "/api/intelligence")
}

// Briefing fetches the current daily briefing.
func (c *Client) Briefing(ctx context.Context) (intel.Briefing, error) {
	return getObject[intel.Briefing](ctx, c, "/api/briefing")
}

// getObject fetches path and decodes a single object, retrying transient
// failures per the client's policy.
func getObject[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	body, err := c.get(ctx, path)
	if err != nil {
		return zero, err
	}
	defer body.Close()
	v, err := jsonutil.DecodeObject[T](body, "GET "+path)
	if err != nil {
		return zero, invalidErr("GET "+path, err)
	}
	return v, nil
}

// getArray is getObject for array payloads.
func getArray[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	entries, err := jsonutil.DecodeArray[T](body, "GET "+path)
	if err != nil {
		return nil, invalidErr("GET "+path, err)
	}
	return entries, nil
}

// get issues the request with retries. The returned body is open only on
// success.
func (c *Client) get(ctx context.Context, path string) (io.ReadCloser, error) {
	op := "GET " + path
	u := c.base.JoinPath(path)

	var lastErr error
	for attempt := 0; ; attempt++ {
		body, err := c.doOnce(ctx, op, u.String())
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !c.retry.ShouldRetry(err, attempt) {
			return nil, lastErr
		}
		select {
		case <-ctx.Done():
			return nil, transientErr(op, ctx.Err())
		case <-time.After(c.retry.BackoffDelay(attempt)):
		}
	}
}

// doOnce performs a single request and classifies the outcome.
func (c *Client) doOnce(ctx context.Context, op, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, invalidErr(op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transientErr(op, err)
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode >= 500:
		resp.Body.Close()
		return nil, transientErr(op, fmt.Errorf("backend returned %s", resp.Status))
	default:
		resp.Body.Close()
		return nil, invalidErr(op, fmt.Errorf("backend returned %s", resp.Status))
	}
}
