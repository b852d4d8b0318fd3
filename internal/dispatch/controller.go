package dispatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/hamid4356/MMT/internal/engine"
	"github.com/hamid4356/MMT/internal/protocol"
	"github.com/hamid4356/MMT/internal/queue"
	"github.com/hamid4356/MMT/pkg/log"
)

// State is the controller lifecycle state.
type State int32

const (
	Created State = iota
	Running
	Draining
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Draining:
		return "draining"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// MalformedPolicy decides what happens to an input line that fails to parse.
type MalformedPolicy int

const (
	// Respond emits a best-effort error response when the line's id can be
	// recovered, otherwise logs and skips the line.
	Respond MalformedPolicy = iota
	// Skip logs and drops the line.
	Skip
	// Fail stops serving; Serve returns the parse error after draining.
	Fail
)

// maxLineBytes bounds a single input line. Sentences are short; this leaves
// generous room for suggestion-heavy requests.
const maxLineBytes = 4 << 20

// Options configures a Controller.
type Options struct {
	// Workers overrides the engine-reported pool size when > 0.
	Workers int
	// QueueCapacity bounds the request queue. 0 means unbounded.
	QueueCapacity int
	// QueueFullPolicy applies when QueueCapacity > 0.
	QueueFullPolicy queue.FullPolicy
	// Malformed selects the bad-input-line policy.
	Malformed MalformedPolicy
	// Logger receives diagnostics. Required.
	Logger log.Logger
}

// Controller owns startup, the ingestion loop, and the shutdown protocol.
// It is single-use: Serve can be called exactly once.
type Controller struct {
	engine    engine.Engine
	requests  *queue.Queue[protocol.Request]
	responses *queue.Queue[protocol.Response]
	workers   int
	malformed MalformedPolicy
	logger    log.Logger

	state    atomic.Int32
	workerWG sync.WaitGroup
	writerWG sync.WaitGroup
}

// New creates a Controller over the given engine. The pool size is the
// engine's thread count unless Options.Workers overrides it.
func New(eng engine.Engine, opts Options) *Controller {
	workers := opts.Workers
	if workers <= 0 {
		workers = eng.ThreadCount()
	}
	if workers <= 0 {
		workers = 1
	}
	return &Controller{
		engine: eng,
		requests: queue.New[protocol.Request](queue.Options{
			Capacity:   opts.QueueCapacity,
			FullPolicy: opts.QueueFullPolicy,
		}),
		// The response queue stays unbounded: bounding it could drop a
		// response and break the one-response-per-request contract.
		responses: queue.New[protocol.Response](queue.Options{}),
		workers:   workers,
		malformed: opts.Malformed,
		logger:    opts.Logger.WithComponent("dispatch"),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return State(c.state.Load()) }

// Workers returns the pool size.
func (c *Controller) Workers() int { return c.workers }

// Serve runs the pipeline: it starts the writer and the workers, ingests
// requests from in until end-of-stream or context cancellation, then drains
// and stops. It blocks until the pipeline has fully stopped.
func (c *Controller) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	if !c.state.CompareAndSwap(int32(Created), int32(Running)) {
		return fmt.Errorf("dispatch: controller already used (state %s)", c.State())
	}

	c.writerWG.Add(1)
	go c.runWriter(out)

	for i := 0; i < c.workers; i++ {
		c.workerWG.Add(1)
		go c.runWorker()
	}
	c.logger.Info("pipeline started", log.Int("workers", c.workers))

	err := c.ingest(ctx, in)
	c.drain()
	return err
}

// ingest reads one line at a time and enqueues parsed requests. It returns
// on end-of-stream, context cancellation, or (with the Fail policy) the
// first malformed line.
func (c *Controller) ingest(ctx context.Context, in io.Reader) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		// This goroutine may outlive Serve when the context is cancelled
		// while Read blocks; it exits once the stream closes.
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("interrupt received, shutting down")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						c.logger.Error("input stream failed", log.Err(err))
					}
				default:
				}
				return nil
			}
			if err := c.submit(line); err != nil {
				return err
			}
		}
	}
}

// submit parses one line and enqueues the request, applying the malformed
// and queue-full policies.
func (c *Controller) submit(line []byte) error {
	req, err := protocol.DecodeRequest(line)
	if err != nil {
		switch c.malformed {
		case Fail:
			return err
		case Skip:
			c.logger.Warn("dropping malformed line", log.Err(err))
			return nil
		default: // Respond
			if id, ok := protocol.ExtractID(line); ok {
				_ = c.responses.Push(protocol.NewError(id, "ProtocolError", err.Error()))
			} else {
				c.logger.Warn("dropping malformed line without id", log.Err(err))
			}
			return nil
		}
	}

	if err := c.requests.Push(req); err != nil {
		// Bounded queue with the Reject policy: the request still gets
		// its one response.
		_ = c.responses.Push(protocol.NewError(req.ID, "QueueFull", "request queue is full"))
	}
	return nil
}

// drain discards queued work, then terminates workers and writer in order.
// The writer sentinel goes in only after every worker has exited, so the
// responses of requests that were already executing are delivered first.
func (c *Controller) drain() {
	c.state.Store(int32(Draining))

	droppedRequests := c.requests.Clear()
	droppedResponses := c.responses.Clear()

	for i := 0; i < c.workers; i++ {
		c.requests.PushShutdown()
	}
	c.workerWG.Wait()

	c.responses.PushShutdown()
	c.writerWG.Wait()

	c.state.Store(int32(Stopped))
	c.logger.Info("pipeline stopped",
		log.Int("dropped_requests", droppedRequests),
		log.Int("dropped_responses", droppedResponses),
	)
}
