// Package envelope defines the provider's {Header, Body} response wrapper.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// ErrorDetail is one provider-reported error.
type ErrorDetail struct {
	Message string `json:"Message"`
}

// Header carries the provider's status and errors for a call.
type Header struct {
	RequestID      string        `json:"RequestId"`
	HTTPStatusCode int           `json:"HttpStatusCode"`
	Errors         []ErrorDetail `json:"Errors"`
}

// Messages returns the non-blank error messages in order.
func (h Header) Messages() []string {
	messages := make([]string, 0, len(h.Errors))

	for _, e := range h.Errors {
		if strings.TrimSpace(e.Message) != "" {
			messages = append(messages, e.Message)
		}
	}

	return messages
}

// HasErrors reports whether the provider listed any errors.
func (h Header) HasErrors() bool {
	return len(h.Errors) > 0
}

// Envelope is the response wrapper. Body is meaningful only when the call
// succeeded and Header.Errors is empty.
type Envelope[T any] struct {
	Header Header `json:"Header"`
	Body   T      `json:"Body"`
}

// Decode parses raw into an envelope. Empty input, a missing Errors list or
// a missing or null Body decode to zero values. Malformed input returns a
// *trade360.DecodeError carrying statusCode.
func Decode[T any](raw []byte, statusCode int) (*Envelope[T], error) {
	env := &Envelope[T]{}

	if len(bytes.TrimSpace(raw)) == 0 {
		return env, nil
	}

	if err := json.Unmarshal(raw, env); err != nil {
		return nil, &trade360.DecodeError{StatusCode: statusCode, Err: err}
	}

	return env, nil
}

// Encode serializes an outbound payload. Payloads are sent as-is, not
// wrapped in an envelope.
func Encode(payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	return data, nil
}
