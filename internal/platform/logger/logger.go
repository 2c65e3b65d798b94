package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	// default logger instance
	defaultLogger = New(os.Getenv("ENVIRONMENT"), false, os.Stderr)
)

// New builds a logger for the given environment.
// production writes JSON at info level, anything else writes text;
// debug lowers the level to debug in both cases.
func New(environment string, debug bool, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)

	if environment == "production" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if debug {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

// Configure replaces the default logger once configuration is known.
func Configure(environment string, debug bool) *logrus.Logger {
	defaultLogger = New(environment, debug, os.Stderr)
	return defaultLogger
}

// returns the default logger instance
func Default() *logrus.Logger {
	return defaultLogger
}

// creates a logger with additional fields
func With(fields logrus.Fields) logrus.FieldLogger {
	return defaultLogger.WithFields(fields)
}

// returns the request logger stored in ctx, or the default logger
func FromContext(ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return defaultLogger
	}

	if l, ok := ctx.Value(loggerKey{}).(logrus.FieldLogger); ok {
		return l
	}

	return defaultLogger
}

// adds logger to context
func WithContext(ctx context.Context, l logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

type loggerKey struct{}
