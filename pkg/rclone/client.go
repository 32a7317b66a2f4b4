// Package rclone is a client for the rclone remote control (rc) API.
//
// Every operation is a single JSON POST to the daemon. The daemon address and
// credentials are resolved through an EndpointSource on each call, so a
// long-lived Client follows credential changes without being rebuilt.
package rclone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single rc request when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

var (
	// ErrInvalidArgument is returned before any request is sent when a
	// required parameter is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoEndpoint is returned when an EndpointSource has no daemon URL.
	ErrNoEndpoint = errors.New("rc endpoint not configured")
)

// HTTPError is a non-2xx response from the rc daemon. The body is kept
// verbatim; rclone puts its own error JSON there.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// Endpoint is where and how to reach the rc daemon.
type Endpoint struct {
	URL string
	// AuthKey is a pre-encoded base64 "user:pass" token sent as "Basic <AuthKey>".
	AuthKey  string
	User     string
	Password string
}

// EndpointSource resolves the daemon endpoint. It is consulted on every call.
type EndpointSource interface {
	RCEndpoint() (Endpoint, error)
}

// StaticEndpoint is an EndpointSource that never changes.
type StaticEndpoint Endpoint

func (e StaticEndpoint) RCEndpoint() (Endpoint, error) {
	if e.URL == "" {
		return Endpoint{}, ErrNoEndpoint
	}
	return Endpoint(e), nil
}

type endpointChain []EndpointSource

// ChainEndpoints returns a source that yields the first endpoint that resolves.
func ChainEndpoints(sources ...EndpointSource) EndpointSource {
	return endpointChain(sources)
}

func (c endpointChain) RCEndpoint() (Endpoint, error) {
	var errs []error
	for _, src := range c {
		if src == nil {
			continue
		}
		ep, err := src.RCEndpoint()
		if err == nil {
			return ep, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return Endpoint{}, ErrNoEndpoint
	}
	return Endpoint{}, errors.Join(errs...)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A timeout set with
// WithTimeout is applied to a copy, h itself is never modified.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client represents an HTTP client for the rclone daemon
type Client struct {
	source     EndpointSource
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient creates a new rclone rc client
func NewClient(source EndpointSource, opts ...Option) *Client {
	c := &Client{source: source}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.httpClient == nil:
		timeout := c.timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	case c.timeout > 0:
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// Call posts request as JSON to the given rc endpoint and decodes the reply
// into response when it is non-nil.
func (c *Client) Call(ctx context.Context, endpoint string, request interface{}, response interface{}) error {
	ep, err := c.resolve()
	if err != nil {
		return err
	}

	if request == nil {
		request = struct{}{}
	}
	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(ep.URL, "/") + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	switch {
	case ep.AuthKey != "":
		req.Header.Set("Authorization", "Basic "+ep.AuthKey)
	case ep.User != "":
		req.SetBasicAuth(ep.User, ep.Password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log().Debug("rc request", "endpoint", endpoint, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &HTTPError{StatusCode: resp.StatusCode, Body: bodyBytes}
	}

	if response != nil {
		if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// log falls back to the default logger at call time so a reconfigured
// default is picked up.
func (c *Client) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

func (c *Client) resolve() (Endpoint, error) {
	if c.source == nil {
		return Endpoint{}, ErrNoEndpoint
	}
	ep, err := c.source.RCEndpoint()
	if err != nil {
		return Endpoint{}, fmt.Errorf("failed to resolve rc endpoint: %w", err)
	}
	if ep.URL == "" {
		return Endpoint{}, ErrNoEndpoint
	}
	return ep, nil
}
