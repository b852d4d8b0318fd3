// Package cache memoizes translations on disk and serves them ahead of the
// decoding engine.
//
// The cache wraps any engine. Only suggestion-free requests are cached:
// suggestions steer the decoder, so their output is not a pure function of
// the source sentence. Keys are the space-joined source line, values the
// space-joined translation; both round-trip through the protocol tokenizer
// unchanged. Cache entries are derived data, so the store runs without
// forced WAL syncs.
package cache
