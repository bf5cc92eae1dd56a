package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/lsportsltd/trade360-go-sdk/internal/constants"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
)

// sensitiveParams are query parameters never written to logs.
var sensitiveParams = []string{"Password", "password"}

// leveledLogger adapts trade360.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger trade360.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

// fields converts alternating keys and values to a map. URL values and URLs
// inside errors are redacted; a trailing key without a value maps to nil.
func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])

		var value interface{}
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}

		switch v := value.(type) {
		case string:
			if key == "url" {
				value = redactURL(v)
			}
		case *url.URL:
			value = redactURL(v.String())
		case error:
			value = redactError(v)
		}

		out[key] = value
	}

	return out
}

// redactURL masks credential query parameters. Unparseable input is
// returned unchanged.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}

	values := u.Query()
	changed := false

	for _, key := range sensitiveParams {
		if values.Has(key) {
			values.Set(key, constants.MaskedSecret)

			changed = true
		}
	}

	if !changed {
		return raw
	}

	u.RawQuery = values.Encode()

	return u.String()
}

// redactError masks credential query parameters in the URL of a *url.Error
// anywhere in err's chain.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactURL(urlErr.URL)
	}

	return err
}
