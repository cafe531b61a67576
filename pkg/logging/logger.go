// Package logging configures the process-wide logrus logger and carries the
// request id through contexts so every log line of a request can be correlated.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const RequestIDKey = "request_id"

type ctxKey struct{}

var std = logrus.New()

// Setup applies level ("debug", "info", ...) and format ("json" or "text").
func Setup(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	std.SetLevel(lvl)

	switch format {
	case "json":
		std.SetFormatter(&logrus.JSONFormatter{})
	default:
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	std.SetOutput(os.Stdout)
	return nil
}

// SetOutput redirects the logger, mainly for tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Logger() *logrus.Logger {
	return std
}

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext returns an entry tagged with the request id, if any.
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(std)
	if id := RequestID(ctx); id != "" {
		entry = entry.WithField(RequestIDKey, id)
	}
	return entry
}
