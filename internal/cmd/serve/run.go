package serverun

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hamid4356/MMT/internal/cache"
	cfgpkg "github.com/hamid4356/MMT/internal/config"
	"github.com/hamid4356/MMT/internal/dispatch"
	"github.com/hamid4356/MMT/internal/engine"
	"github.com/hamid4356/MMT/internal/queue"
	logpkg "github.com/hamid4356/MMT/pkg/log"
)

// Options configures one serving run.
type Options struct {
	// Model is the engine reference (identity:, http(s)://, lambda://).
	Model string
	// Config carries the runtime tunables.
	Config cfgpkg.Config
	// In and Out override the protocol streams. Defaults: stdin, stdout.
	In  io.Reader
	Out io.Writer
}

// Run builds the engine and the dispatch pipeline and blocks until the input
// stream ends or ctx is cancelled. The engine is closed after the pipeline
// has fully stopped.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logpkg.ApplyConfig(&logpkg.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	// Stray stdlib logging from dependencies must not touch stdout.
	logpkg.RedirectStdLog(logger)

	eng, err := engine.Open(sctx, opts.Model, engine.Options{
		Threads:        cfg.PoolSize,
		RequestTimeout: time.Duration(cfg.RequestTimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("open engine: %w", err)
	}
	if cfg.CacheDir != "" {
		cached, err := cache.Open(cfg.CacheDir, eng, logger)
		if err != nil {
			_ = eng.Close()
			return err
		}
		eng = cached
	}
	defer func() {
		if err := eng.Close(); err != nil {
			logger.Error("engine close failed", logpkg.Err(err))
		}
	}()

	ctl := dispatch.New(eng, dispatch.Options{
		Workers:         cfg.PoolSize,
		QueueCapacity:   cfg.QueueCapacity,
		QueueFullPolicy: fullPolicy(cfg.QueueFullPolicy),
		Malformed:       malformedPolicy(cfg.OnMalformed),
		Logger:          logger,
	})

	logger.Info("decoder server starting",
		logpkg.Str("model", opts.Model),
		logpkg.Int("workers", ctl.Workers()),
		logpkg.Int("queue_capacity", cfg.QueueCapacity),
		logpkg.Str("on_malformed", cfg.OnMalformed),
		logpkg.Bool("cache", cfg.CacheDir != ""),
	)

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return ctl.Serve(sctx, in, out)
}

func fullPolicy(s string) queue.FullPolicy {
	if s == "reject" {
		return queue.Reject
	}
	return queue.Block
}

func malformedPolicy(s string) dispatch.MalformedPolicy {
	switch s {
	case "skip":
		return dispatch.Skip
	case "fail":
		return dispatch.Fail
	default:
		return dispatch.Respond
	}
}
