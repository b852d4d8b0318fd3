// Package dispatch implements the concurrent request pipeline: one ingestion
// loop reading JSON lines, N workers calling the decoding engine, and one
// writer streaming JSON responses.
//
// # Lifecycle
//
// A Controller moves through Created -> Running -> Draining -> Stopped, and
// never re-enters an earlier state. Running starts the writer and the
// workers, then reads input lines until the stream ends or the context is
// cancelled. Draining drops everything still queued (documented data loss,
// not a defect), then terminates workers and writer with shutdown sentinels.
// A request a worker had already dequeued still runs to completion and its
// response is delivered before the writer terminates.
//
// # Ordering
//
// Each queue is strictly FIFO, but response emission order is not request
// submission order: workers with different decode latencies finish out of
// order, and that is an accepted property of the protocol.
//
// # Failure isolation
//
// Engine failures, including panics, are converted into error responses
// scoped to the request that caused them. A worker never dies because of a
// request.
package dispatch
