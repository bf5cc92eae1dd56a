package commands

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
	"github.com/m-mizutani/masq"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rolling log file limits.
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// unredactedPassword matches a password query parameter that still carries
// its value.
var unredactedPassword = regexp.MustCompile(`(?i)password=[^*&\s]`)

// redactOptions lists the fields masked before anything is logged.
func redactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("credentials"),
		masq.WithFieldName("authorization"),
		masq.WithRegex(unredactedPassword),
	}
}

// cliLogger adapts charmbracelet/log to trade360.Logger. Every field value
// passes through masq before it reaches a sink.
type cliLogger struct {
	sinks  []*log.Logger
	redact func(groups []string, a slog.Attr) slog.Attr
	closer io.Closer
}

// newCLILogger logs to console at debug level when verbose is set, and to a
// rotated JSON file when logFile is not empty.
func newCLILogger(console io.Writer, verbose bool, logFile string) *cliLogger {
	consoleLogger := log.NewWithOptions(console, log.Options{
		ReportTimestamp: true,
		Prefix:          "trade360",
		Level:           log.WarnLevel,
	})

	if verbose {
		consoleLogger.SetLevel(log.DebugLevel)
	}

	logger := &cliLogger{
		sinks:  []*log.Logger{consoleLogger},
		redact: masq.New(redactOptions()...),
	}

	if logFile != "" {
		file := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
			Compress:   true,
		}

		logger.sinks = append(logger.sinks, log.NewWithOptions(file, log.Options{
			ReportTimestamp: true,
			Formatter:       log.JSONFormatter,
			Level:           log.DebugLevel,
		}))
		logger.closer = file
	}

	return logger
}

// Close flushes and closes the log file, if any.
func (l *cliLogger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

func (l *cliLogger) Debug(msg string, fields map[string]interface{}) {
	keyvals := l.keyvals(fields)
	for _, sink := range l.sinks {
		sink.Debug(msg, keyvals...)
	}
}

func (l *cliLogger) Info(msg string, fields map[string]interface{}) {
	keyvals := l.keyvals(fields)
	for _, sink := range l.sinks {
		sink.Info(msg, keyvals...)
	}
}

func (l *cliLogger) Warn(msg string, fields map[string]interface{}) {
	keyvals := l.keyvals(fields)
	for _, sink := range l.sinks {
		sink.Warn(msg, keyvals...)
	}
}

func (l *cliLogger) Error(msg string, fields map[string]interface{}) {
	keyvals := l.keyvals(fields)
	for _, sink := range l.sinks {
		sink.Error(msg, keyvals...)
	}
}

// keyvals flattens fields in key order, redacting each value.
func (l *cliLogger) keyvals(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	keyvals := make([]interface{}, 0, len(fields)*2)

	for _, key := range keys {
		attr := l.redact(nil, slog.Any(key, fields[key]))
		keyvals = append(keyvals, key, attr.Value.Any())
	}

	return keyvals
}

var _ trade360.Logger = (*cliLogger)(nil)

// stderrLogger is used when a command builds its own client.
func stderrLogger(verbose bool, logFile string) *cliLogger {
	return newCLILogger(os.Stderr, verbose, logFile)
}
