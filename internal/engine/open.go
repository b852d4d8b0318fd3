package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hamid4356/MMT/internal/engine/lambda"
	"github.com/hamid4356/MMT/internal/engine/remote"
)

// Options tunes engine construction.
type Options struct {
	// Threads overrides the engine-reported thread count when > 0.
	Threads int
	// RequestTimeout bounds a single remote Translate call. 0 keeps the
	// adapter default.
	RequestTimeout time.Duration
}

// Open resolves a model reference to a concrete engine. Unknown schemes fail
// with ErrUnsupportedModel; a failed engine construction is a fatal startup
// error for the caller.
func Open(ctx context.Context, modelRef string, opts Options) (Engine, error) {
	switch {
	case modelRef == "identity" || modelRef == "identity:":
		return NewIdentity(opts.Threads), nil

	case strings.HasPrefix(modelRef, "identity:"):
		n, err := strconv.Atoi(strings.TrimPrefix(modelRef, "identity:"))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("identity engine: bad thread count in %q", modelRef)
		}
		if opts.Threads > 0 {
			n = opts.Threads
		}
		return NewIdentity(n), nil

	case strings.HasPrefix(modelRef, "http://") || strings.HasPrefix(modelRef, "https://"):
		return remote.New(modelRef, remote.Options{
			Threads: opts.Threads,
			Timeout: opts.RequestTimeout,
		})

	case strings.HasPrefix(modelRef, "lambda://"):
		fn := strings.TrimPrefix(modelRef, "lambda://")
		if fn == "" {
			return nil, fmt.Errorf("lambda engine: missing function name in %q", modelRef)
		}
		return lambda.New(ctx, fn, lambda.Options{Threads: opts.Threads})

	default:
		return nil, fmt.Errorf("%w: %q (supported: identity:, http(s)://, lambda://)", ErrUnsupportedModel, modelRef)
	}
}
