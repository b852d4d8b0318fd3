// Package protocol defines the request/response model of the decoder wire
// protocol and its line-oriented JSON codec.
//
// One JSON object per line in both directions. Requests carry an opaque
// integer id, a source sentence tokenized on single spaces, and optional
// translation suggestions. Responses echo the id and carry exactly one of a
// translation or a structured error.
//
// Tokenization splits on every single space without collapsing runs, so
// consecutive spaces produce empty tokens. Joining tokens with a space
// reproduces the original sentence byte for byte; decode/encode round-trips
// rely on that.
package protocol
