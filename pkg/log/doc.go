// Package log provides the structured logging facade used across decoderd.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by Go's
// standard library slog via a custom handler that routes records through the
// formatter/output pipeline. Diagnostics never share a sink with the wire
// protocol: the default console output writes to stderr, leaving stdout to
// the response writer.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("dispatch"))
//	l.Info("pool started", log.Int("workers", 4))
//
// # Configuration
//
// Use ApplyConfig to build a logger from a declarative Config, supporting
// text or JSON formatting. To capture stray standard-library logging from
// dependencies, use RedirectStdLog.
package log
