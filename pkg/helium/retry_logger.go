package helium

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// retryLogger bridges the retrying transport's logger to zerolog.
type retryLogger struct {
	logger zerolog.Logger
}

var _ retryablehttp.LeveledLogger = retryLogger{}

func newRetryLogger(logger zerolog.Logger) retryLogger {
	return retryLogger{logger: logger}
}

func (l retryLogger) join(values ...interface{}) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(strs, " ")
}

// Error prints an error level message
func (l retryLogger) Error(msg string, args ...interface{}) {
	l.logger.Error().Msg(fmt.Sprintf("%s %s", msg, l.join(args...)))
}

// Warn prints a warn level message
func (l retryLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn().Msg(fmt.Sprintf("%s %s", msg, l.join(args...)))
}

// Info prints an info level message
func (l retryLogger) Info(msg string, args ...interface{}) {
	l.logger.Info().Msg(fmt.Sprintf("%s %s", msg, l.join(args...)))
}

// Debug prints a debug level message
func (l retryLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug().Msg(fmt.Sprintf("%s %s", msg, l.join(args...)))
}
