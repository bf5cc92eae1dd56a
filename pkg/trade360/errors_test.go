package trade360

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status only",
			err:      &APIError{StatusCode: 500},
			expected: "trade360: request failed with status 500",
		},
		{
			name:     "with request id and one message",
			err:      &APIError{StatusCode: 400, RequestID: "r1", Messages: []string{"bad request"}},
			expected: "trade360: request r1 failed with status 400: bad request",
		},
		{
			name:     "multiple messages",
			err:      &APIError{StatusCode: 200, RequestID: "r2", Messages: []string{"first", "second"}},
			expected: "trade360: request r2 failed with status 200: first; second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_IsSuccessStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, (&APIError{StatusCode: 200}).IsSuccessStatus())
	assert.True(t, (&APIError{StatusCode: 299}).IsSuccessStatus())
	assert.False(t, (&APIError{StatusCode: 300}).IsSuccessStatus())
	assert.False(t, (&APIError{StatusCode: 404}).IsSuccessStatus())
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	apiErr := fmt.Errorf("getting sports: %w", &APIError{StatusCode: 404, Messages: []string{"missing"}})
	assert.True(t, IsAPIError(apiErr))
	assert.Equal(t, 404, StatusCode(apiErr))
	assert.False(t, IsValidationError(apiErr))

	validationErr := &ValidationError{Rule: RuleRequired, Field: "Languages", Message: "Languages must be filled."}
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", validationErr)))
	assert.Equal(t, "Languages must be filled.", validationErr.Error())

	decodeErr := &DecodeError{StatusCode: 502, Err: errors.New("unexpected end of JSON input")}
	assert.Equal(t, 502, StatusCode(decodeErr))
	assert.Contains(t, decodeErr.Error(), "status 502")

	assert.Equal(t, 0, StatusCode(errors.New("other")))

	canceled := fmt.Errorf("%w: %w", ErrCanceled, context.Canceled)
	assert.True(t, IsCanceled(canceled))
	assert.ErrorIs(t, canceled, context.Canceled)
	assert.False(t, IsCanceled(apiErr))
}

func TestConfigErrorsWrapInvalidConfig(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		ErrConfigRequired,
		ErrTransportRequired,
		ErrBaseURLRequired,
		ErrInvalidBaseURL,
		ErrCredentialsRequired,
		ErrInvalidCredentials,
	} {
		assert.ErrorIs(t, err, ErrInvalidConfig, err.Error())
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &TransportError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "trade360: transport failure: connection refused", err.Error())
}
