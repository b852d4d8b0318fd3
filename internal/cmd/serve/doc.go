// Package serverun exposes the shared Run entrypoint used by the CLI to
// start the dispatch pipeline on a model reference, handling logger setup,
// engine construction, and signal-aware shutdown.
//
// Example:
//
//	cfg := config.Default()
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = serverun.Run(ctx, serverun.Options{Model: "identity:", Config: cfg})
package serverun
