package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// FormatError renders a command error for the terminal. Provider errors are
// expanded so the status, request id and each message are visible.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *trade360.APIError
	if errors.As(err, &apiErr) {
		var b strings.Builder

		fmt.Fprintf(&b, "Error: Trade360 returned status %d", apiErr.StatusCode)

		if apiErr.RequestID != "" {
			fmt.Fprintf(&b, "\n  Request ID: %s", apiErr.RequestID)
		}

		for _, message := range apiErr.Messages {
			fmt.Fprintf(&b, "\n  - %s", message)
		}

		return b.String()
	}

	var validationErr *trade360.ValidationError
	if errors.As(err, &validationErr) {
		return "Error: invalid request: " + validationErr.Error()
	}

	if trade360.IsCanceled(err) {
		return "Error: request canceled"
	}

	var transportErr *trade360.TransportError
	if errors.As(err, &transportErr) {
		return "Error: could not reach Trade360: " + transportErr.Error()
	}

	return "Error: " + err.Error()
}
