package trade360

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidConfig is wrapped by every configuration error so callers can
// branch on the whole family with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// Configuration errors. Returned synchronously by constructors.
var (
	ErrConfigRequired      = fmt.Errorf("%w: config is required", ErrInvalidConfig)
	ErrTransportRequired   = fmt.Errorf("%w: transport is required", ErrInvalidConfig)
	ErrBaseURLRequired     = fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	ErrInvalidBaseURL      = fmt.Errorf("%w: base URL is not a valid absolute URL", ErrInvalidConfig)
	ErrCredentialsRequired = fmt.Errorf("%w: credentials are required", ErrInvalidConfig)
	ErrInvalidCredentials  = fmt.Errorf("%w: credentials are invalid", ErrInvalidConfig)
)

// Call errors.
var (
	// ErrClientClosed is returned by any call made after Close.
	ErrClientClosed = errors.New("trade360: client is closed")

	// ErrCanceled wraps the context error when a call is cancelled or its
	// deadline expires before the response is read.
	ErrCanceled = errors.New("trade360: request canceled")

	// ErrInvalidPayload is returned when a POST payload does not encode to a
	// JSON object, so credentials cannot be merged into it.
	ErrInvalidPayload = errors.New("trade360: payload must encode to a JSON object")
)

// APIError is returned when the provider reports a failure, either through a
// non-2xx status code or through a non-empty Header.Errors list.
type APIError struct {
	StatusCode int      `json:"status_code" yaml:"status_code"`
	RequestID  string   `json:"request_id"  yaml:"request_id"`
	Messages   []string `json:"messages"    yaml:"messages"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder

	b.WriteString("trade360: request")

	if e.RequestID != "" {
		fmt.Fprintf(&b, " %s", e.RequestID)
	}

	fmt.Fprintf(&b, " failed with status %d", e.StatusCode)

	if len(e.Messages) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Messages, "; "))
	}

	return b.String()
}

// Message returns the aggregated provider messages.
func (e *APIError) Message() string {
	return strings.Join(e.Messages, "; ")
}

// IsSuccessStatus reports whether the provider reported a 2xx status.
func (e *APIError) IsSuccessStatus() bool {
	return e.StatusCode >= http.StatusOK && e.StatusCode < http.StatusMultipleChoices
}

// ValidationError is returned before any network activity when a request
// breaks one of its validation rules.
type ValidationError struct {
	Rule    string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// DecodeError is returned when a response body cannot be parsed into the
// response envelope at all.
type DecodeError struct {
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("trade360: decoding response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when the request could not be delivered or its
// response could not be read.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("trade360: transport failure: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError checks if the error is a provider-reported failure.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsValidationError checks if the error was raised by a request validator.
func IsValidationError(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsCanceled checks if the call was cancelled through its context.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// StatusCode returns the provider status carried by err, or 0 if err is not
// an APIError or DecodeError.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	decodeErr := &DecodeError{}
	if errors.As(err, &decodeErr) {
		return decodeErr.StatusCode
	}

	return 0
}
