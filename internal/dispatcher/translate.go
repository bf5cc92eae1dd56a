package dispatcher

import (
	"net/http"

	"github.com/lsportsltd/trade360-go-sdk/internal/envelope"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// translate returns an *trade360.APIError when the HTTP status is outside
// 2xx or the envelope lists any error, and nil otherwise. Either signal is
// enough on its own.
func translate(statusCode int, header envelope.Header) error {
	success := statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
	if success && !header.HasErrors() {
		return nil
	}

	return &trade360.APIError{
		StatusCode: statusCode,
		RequestID:  header.RequestID,
		Messages:   header.Messages(),
	}
}
