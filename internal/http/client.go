// Package http is the single-attempt transport beneath the dispatcher. It
// sends one request per call and hands back the status code and raw body;
// interpreting the body is left to the caller.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// Request is an outbound HTTP request. URL must be absolute.
type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

// Response holds the status and fully read body of a completed request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends requests without retrying. It is safe for concurrent use.
type Client struct {
	httpClient *retryablehttp.Client
	userAgent  string
	logger     trade360.Logger
	debug      bool

	closed    atomic.Bool
	closeOnce sync.Once
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger trade360.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithTimeout sets the overall timeout of the underlying http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// NewClient creates a new transport.
func NewClient(opts ...Option) *Client {
	retryClient := &retryablehttp.Client{
		HTTPClient:   &http.Client{Timeout: constants.DefaultHTTPTimeout},
		RetryMax:     0,
		CheckRetry:   neverRetry,
		Backoff:      retryablehttp.DefaultBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}

	client := &Client{
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil && client.debug {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// neverRetry stops after the first attempt and passes the attempt's own
// error, if any, through unchanged.
func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// Do sends the request once. A cancelled or expired ctx yields an error
// wrapping trade360.ErrCanceled and the context error; other delivery
// failures, the client timeout included, yield *trade360.TransportError. Any HTTP status is returned as a
// Response, not an error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.closed.Load() {
		return nil, trade360.ErrClientClosed
	}

	if err := ctx.Err(); err != nil {
		return nil, canceled(err)
	}

	var body interface{}
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(constants.HeaderCorrelationID, uuid.NewString())

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	for key, values := range req.Headers {
		httpReq.Header.Del(key)

		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":         req.Method,
			"url":            redactURL(req.URL),
			"correlation_id": httpReq.Header.Get(constants.HeaderCorrelationID),
		})
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.failure(ctx, err)
	}

	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.failure(ctx, fmt.Errorf("reading response body: %w", err))
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
			"bytes":    len(data),
		})
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       data,
	}, nil
}

// Get sends a GET request to url.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, URL: url})
}

// Post sends a POST request with a JSON body to url.
func (c *Client) Post(ctx context.Context, url string, body []byte) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, URL: url, Body: body})
}

// Close releases idle connections. Later calls fail with
// trade360.ErrClientClosed. Close is idempotent.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.httpClient.HTTPClient.CloseIdleConnections()
	})

	return nil
}

// failure classifies a failed call. Only the caller's ctx makes it a
// cancellation; an http.Client timeout is a transport error. The URL in the
// error is redacted since GET calls carry the password in the query.
func (c *Client) failure(ctx context.Context, err error) error {
	err = redactError(err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return canceled(ctxErr)
	}

	if c.logger != nil {
		c.logger.Error("HTTP request failed", map[string]interface{}{"error": err.Error()})
	}

	return &trade360.TransportError{Err: err}
}

func canceled(err error) error {
	return fmt.Errorf("%w: %w", trade360.ErrCanceled, err)
}
