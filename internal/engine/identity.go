package engine

import (
	"context"
	"runtime"

	"github.com/hamid4356/MMT/internal/protocol"
)

// Identity is the no-op engine: the translation is the source. It exists for
// smoke tests and for exercising the dispatch pipeline without a model.
type Identity struct {
	threads int
}

// NewIdentity creates an Identity engine. threads <= 0 selects GOMAXPROCS.
func NewIdentity(threads int) *Identity {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	return &Identity{threads: threads}
}

func (e *Identity) ThreadCount() int { return e.threads }

func (e *Identity) Translate(_ context.Context, source []string, _ []protocol.Suggestion) ([]string, error) {
	out := make([]string, len(source))
	copy(out, source)
	return out, nil
}

func (e *Identity) Close() error { return nil }
