package engine

import (
	"context"
	"errors"

	"github.com/hamid4356/MMT/internal/protocol"
)

// Engine is the decoding collaborator behind the worker pool.
type Engine interface {
	// ThreadCount reports how many concurrent Translate calls the engine
	// is sized for. It drives the worker pool size.
	ThreadCount() int
	// Translate decodes one source sentence, optionally steered by
	// suggestions. It must be safe for concurrent use.
	Translate(ctx context.Context, source []string, suggestions []protocol.Suggestion) ([]string, error)
	// Close releases engine resources. Called once, after dispatch stops.
	Close() error
}

// ErrUnsupportedModel is returned by Open for a model reference no engine
// claims.
var ErrUnsupportedModel = errors.New("engine: unsupported model reference")

// Faulter classifies an engine failure for the wire protocol's error.type
// field. Adapter packages implement it on their error types so they do not
// have to import this package.
type Faulter interface {
	error
	FaultKind() string
	FaultMessage() string
}

// Fault is the generic engine failure used when an adapter has no more
// specific error type.
type Fault struct {
	Kind string
	Err  error
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return f.Kind
	}
	return f.Kind + ": " + f.Err.Error()
}

func (f *Fault) Unwrap() error { return f.Err }

func (f *Fault) FaultKind() string { return f.Kind }

func (f *Fault) FaultMessage() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// NewFault wraps err with a failure kind.
func NewFault(kind string, err error) error { return &Fault{Kind: kind, Err: err} }

// FaultKind extracts the failure kind from an engine error, falling back to
// a generic kind for unclassified failures.
func FaultKind(err error) string {
	var f Faulter
	if errors.As(err, &f) {
		return f.FaultKind()
	}
	return "EngineError"
}

// FaultMessage extracts the human-readable part of an engine error.
func FaultMessage(err error) string {
	var f Faulter
	if errors.As(err, &f) {
		return f.FaultMessage()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
