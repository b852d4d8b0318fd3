package log

import (
	stdlog "log"
	"strings"
)

// stdLogWriter adapts the facade to io.Writer for the standard library.
type stdLogWriter struct {
	logger Logger
}

func (w *stdLogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	if msg != "" {
		w.logger.Info(msg, Component("stdlog"))
	}
	return len(p), nil
}

// RedirectStdLog routes standard-library log output (used by some
// dependencies) through the given Logger so it cannot leak onto stdout.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(&stdLogWriter{logger: logger})
}
