package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamid4356/MMT/internal/engine"
	"github.com/hamid4356/MMT/internal/protocol"
	pebblestore "github.com/hamid4356/MMT/internal/storage/pebble"
	"github.com/hamid4356/MMT/pkg/log"
)

var keyPrefix = []byte("tr/")

// Engine wraps an inner engine with a pebble-backed translation cache.
type Engine struct {
	inner  engine.Engine
	db     *pebblestore.DB
	logger log.Logger
}

// Open opens (or creates) the cache at dir and wraps inner with it.
func Open(dir string, inner engine.Engine, logger log.Logger) (*Engine, error) {
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir: dir,
		Fsync:   pebblestore.FsyncModeNever,
	})
	if err != nil {
		return nil, fmt.Errorf("open translation cache: %w", err)
	}
	return &Engine{inner: inner, db: db, logger: logger.WithComponent("cache")}, nil
}

// ThreadCount defers to the wrapped engine.
func (e *Engine) ThreadCount() int { return e.inner.ThreadCount() }

// Translate serves a cached translation when one exists, otherwise decodes
// through the wrapped engine and stores the result. Requests with
// suggestions always bypass the cache.
func (e *Engine) Translate(ctx context.Context, source []string, suggestions []protocol.Suggestion) ([]string, error) {
	if len(suggestions) > 0 {
		return e.inner.Translate(ctx, source, suggestions)
	}

	key := cacheKey(source)
	if val, err := e.db.Get(key); err == nil {
		return protocol.Tokenize(string(val)), nil
	} else if !errors.Is(err, pebblestore.ErrNotFound) {
		e.logger.Warn("cache read failed", log.Err(err))
	}

	translation, err := e.inner.Translate(ctx, source, suggestions)
	if err != nil {
		return nil, err
	}
	if err := e.db.Set(key, []byte(protocol.Detokenize(translation))); err != nil {
		e.logger.Warn("cache write failed", log.Err(err))
	}
	return translation, nil
}

// Close closes the cache store, then the wrapped engine.
func (e *Engine) Close() error {
	dbErr := e.db.Close()
	engErr := e.inner.Close()
	if dbErr != nil {
		return dbErr
	}
	return engErr
}

func cacheKey(source []string) []byte {
	return append(append([]byte(nil), keyPrefix...), protocol.Detokenize(source)...)
}
