// Package engine defines the decoding engine contract and the factory that
// resolves a model reference to a concrete engine.
//
// The dispatch core treats the engine as an opaque collaborator: it reports
// how many worker threads it can serve (ThreadCount), translates one token
// sequence at a time, and releases its resources on Close. Engines must be
// reentrant or internally synchronized; the dispatcher calls Translate from
// all workers concurrently.
//
// Model references are scheme-addressed:
//
//	identity:            echo engine for smoke tests and pipeline bring-up
//	identity:8           same, with an explicit thread count
//	http://host/...      remote decoder daemon (see engine/remote)
//	lambda://function    AWS Lambda decoder (see engine/lambda)
package engine
