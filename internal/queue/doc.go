// Package queue implements the FIFO hand-off queues of the dispatch
// pipeline.
//
// Elements are a tagged variant of payload or shutdown sentinel, so no
// reserved payload value can ever collide with real data. Consumers block on
// Pop until an element arrives; a shutdown element terminates exactly one
// consumer.
//
// Capacity is configuration: 0 keeps the queue unbounded (the historical
// behavior, with its known memory risk under a slow engine), a positive
// capacity bounds pending payloads and applies a FullPolicy of either
// blocking the producer or rejecting the push with ErrFull. Shutdown
// sentinels are exempt from capacity so termination can never wedge on a
// full queue.
package queue
