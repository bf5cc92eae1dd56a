// Package dispatcher sends credential-augmented requests to the provider and
// unwraps the {Header, Body} envelope of each response.
package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lsportsltd/trade360-go-sdk/internal/envelope"
	transport "github.com/lsportsltd/trade360-go-sdk/internal/http"
	"github.com/lsportsltd/trade360-go-sdk/internal/query"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// Transport executes a single HTTP request.
type Transport interface {
	Do(ctx context.Context, req *transport.Request) (*transport.Response, error)
	Close() error
}

// Dispatcher owns a transport, a base URL and the package credentials. It
// holds no per-call state and is safe for concurrent use.
type Dispatcher struct {
	transport        Transport
	baseURL          string
	credentialFields map[string]json.RawMessage
	credentialQuery  string
	logger           trade360.Logger
	interceptors     *trade360.InterceptorChain

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-call debug output.
func WithLogger(logger trade360.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithInterceptors sets hooks run around every call.
func WithInterceptors(chain *trade360.InterceptorChain) Option {
	return func(d *Dispatcher) {
		d.interceptors = chain
	}
}

// New creates a dispatcher. Missing or invalid arguments fail here, wrapping
// trade360.ErrInvalidConfig; the transport is not used until the first call.
func New(t Transport, baseURL string, creds *trade360.Credentials, opts ...Option) (*Dispatcher, error) {
	if isNil(t) {
		return nil, trade360.ErrTransportRequired
	}

	if err := trade360.ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	normalized := creds.Normalized()

	fields, err := credentialFields(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", trade360.ErrInvalidCredentials, err)
	}

	d := &Dispatcher{
		transport:        t,
		baseURL:          strings.TrimRight(baseURL, "/") + "/",
		credentialFields: fields,
		credentialQuery:  query.Build(normalized),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Post sends payload, with the credentials merged into its top-level JSON
// object, to endpoint and returns the envelope body. A nil payload sends the
// credentials alone.
//
// The body is decoded before the status is checked, so a non-2xx response
// whose body is not an envelope (a gateway HTML page, say) fails with
// *trade360.DecodeError rather than *trade360.APIError. Both carry the
// status; trade360.StatusCode reads it from either.
func Post[T any](ctx context.Context, d *Dispatcher, endpoint string, payload any) (T, error) {
	var zero T

	if d.closed.Load() {
		return zero, trade360.ErrClientClosed
	}

	body, err := d.mergeCredentials(payload)
	if err != nil {
		return zero, err
	}

	return send[T](ctx, d, http.MethodPost, endpoint, d.url(endpoint), body)
}

// Get sends a GET to endpoint with the credentials and the parameters of
// queryObject in the query string, and returns the envelope body. Failures
// are reported as for Post.
func Get[T any](ctx context.Context, d *Dispatcher, endpoint string, queryObject any) (T, error) {
	var zero T

	if d.closed.Load() {
		return zero, trade360.ErrClientClosed
	}

	target := query.AppendTo(d.url(endpoint), query.Join(d.credentialQuery, query.Build(queryObject)))

	return send[T](ctx, d, http.MethodGet, endpoint, target, nil)
}

// Close closes the transport. Calls made afterwards fail with
// trade360.ErrClientClosed. Close is idempotent.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		d.closeErr = d.transport.Close()
	})

	return d.closeErr
}

// BaseURL returns the normalized base URL, always ending in "/".
func (d *Dispatcher) BaseURL() string {
	return d.baseURL
}

func send[T any](ctx context.Context, d *Dispatcher, method, endpoint, target string, body []byte) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, canceled(err)
	}

	req := &trade360.Request{
		Method:   method,
		Endpoint: endpoint,
		Headers:  make(http.Header),
		Body:     body,
	}

	if err := d.interceptors.ExecuteRequestInterceptors(ctx, req); err != nil {
		return zero, err
	}

	start := time.Now()

	resp, err := d.transport.Do(ctx, &transport.Request{
		Method:  method,
		URL:     target,
		Headers: req.Headers,
		Body:    req.Body,
	})
	if err != nil {
		err = classify(ctx, err)
		_ = d.intercept(ctx, req, &trade360.Response{Error: err})

		return zero, err
	}

	env, err := envelope.Decode[T](resp.Body, resp.StatusCode)
	if err == nil {
		err = translate(resp.StatusCode, env.Header)
	}

	interceptErr := d.intercept(ctx, req, &trade360.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      err,
	})

	if err != nil {
		requestID := ""
		if env != nil {
			requestID = env.Header.RequestID
		}

		d.debug("Trade360 call failed", method, endpoint, resp.StatusCode, requestID, start)

		return zero, err
	}

	if interceptErr != nil {
		return zero, interceptErr
	}

	d.debug("Trade360 call", method, endpoint, resp.StatusCode, env.Header.RequestID, start)

	return env.Body, nil
}

func (d *Dispatcher) intercept(ctx context.Context, req *trade360.Request, resp *trade360.Response) error {
	return d.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
}

func (d *Dispatcher) debug(msg, method, endpoint string, status int, requestID string, start time.Time) {
	if d.logger == nil {
		return
	}

	d.logger.Debug(msg, map[string]interface{}{
		"method":     method,
		"endpoint":   endpoint,
		"status":     status,
		"request_id": requestID,
		"duration":   time.Since(start).String(),
	})
}

func (d *Dispatcher) url(endpoint string) string {
	return d.baseURL + strings.TrimLeft(endpoint, "/")
}

// mergeCredentials encodes payload and sets the credential keys on its
// top-level object. Credential keys win over payload keys of the same name.
func (d *Dispatcher) mergeCredentials(payload any) ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(d.credentialFields))

	if !isNil(payload) {
		data, err := envelope.Encode(payload)
		if err != nil {
			return nil, err
		}

		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("%w: got %s", trade360.ErrInvalidPayload, reflect.TypeOf(payload))
		}

		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, fmt.Errorf("%w: %w", trade360.ErrInvalidPayload, err)
		}
	}

	for key, value := range d.credentialFields {
		fields[key] = value
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	return body, nil
}

func credentialFields(creds trade360.Credentials) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// classify maps transport failures onto the error taxonomy for transports
// that return plain errors. Only the caller's ctx makes a failure a
// cancellation; a client-side timeout stays a transport error.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, trade360.ErrCanceled),
		errors.Is(err, trade360.ErrClientClosed):
		return err
	case ctx.Err() != nil:
		return canceled(ctx.Err())
	}

	var transportErr *trade360.TransportError
	if errors.As(err, &transportErr) {
		return err
	}

	return &trade360.TransportError{Err: err}
}

func canceled(err error) error {
	return fmt.Errorf("%w: %w", trade360.ErrCanceled, err)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
