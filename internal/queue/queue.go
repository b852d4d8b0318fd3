package queue

import (
	"errors"
	"sync"
)

// FullPolicy selects producer behavior when a bounded queue is full.
type FullPolicy int

const (
	// Block suspends Push until a consumer makes room.
	Block FullPolicy = iota
	// Reject makes Push fail immediately with ErrFull.
	Reject
)

// ErrFull is returned by Push on a full queue with the Reject policy.
var ErrFull = errors.New("queue: full")

// Options configures a Queue.
type Options struct {
	// Capacity bounds pending payload elements. 0 means unbounded.
	Capacity int
	// FullPolicy applies only when Capacity > 0.
	FullPolicy FullPolicy
}

// element is the tagged variant carried by the queue.
type element[T any] struct {
	value    T
	shutdown bool
}

// Queue is a FIFO queue of payloads and shutdown sentinels, safe for any
// number of producers and consumers.
type Queue[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	elems    []element[T]
	payloads int
	opts     Options
}

// New creates a Queue with the given options.
func New[T any](opts Options) *Queue[T] {
	q := &Queue[T]{opts: opts}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends a payload element. With a bounded queue it blocks or rejects
// according to the FullPolicy.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.opts.Capacity > 0 {
		if q.opts.FullPolicy == Reject && q.payloads >= q.opts.Capacity {
			return ErrFull
		}
		for q.payloads >= q.opts.Capacity {
			q.cond.Wait()
		}
	}
	q.elems = append(q.elems, element[T]{value: v})
	q.payloads++
	q.cond.Broadcast()
	return nil
}

// PushShutdown appends one shutdown sentinel. Sentinels ignore capacity.
func (q *Queue[T]) PushShutdown() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.elems = append(q.elems, element[T]{shutdown: true})
	q.cond.Broadcast()
}

// Pop blocks until an element is available. It returns ok=false when the
// popped element is a shutdown sentinel; the consumer must then terminate.
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.elems) == 0 {
		q.cond.Wait()
	}
	e := q.elems[0]
	q.elems = q.elems[1:]
	if e.shutdown {
		return v, false
	}
	q.payloads--
	q.cond.Broadcast()
	return e.value, true
}

// Clear drops all pending payload elements and returns how many were
// dropped. Shutdown sentinels stay queued.
func (q *Queue[T]) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.elems[:0]
	dropped := 0
	for _, e := range q.elems {
		if e.shutdown {
			kept = append(kept, e)
		} else {
			dropped++
		}
	}
	q.elems = kept
	q.payloads = 0
	q.cond.Broadcast()
	return dropped
}

// Len returns the number of pending payload elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.payloads
}
