package slogx

import (
	"bytes"
	"log/slog"
	"testing"
)

type TestWriter struct {
	t testing.TB
}

func (w *TestWriter) Write(p []byte) (n int, err error) {
	w.t.Logf("%s", bytes.TrimSuffix(p, []byte("\n")))

	return len(p), nil
}

// NewTestLogger returns a debug logger writing to the test output, context
// attributes included.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(ContextHandler{slog.NewTextHandler(&TestWriter{t: t}, opts)})
}
