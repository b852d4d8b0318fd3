package dispatch

import (
	"context"
	"fmt"

	"github.com/hamid4356/MMT/internal/engine"
	"github.com/hamid4356/MMT/internal/protocol"
)

// runWorker pulls requests until it pops a shutdown sentinel. Every dequeued
// request produces exactly one enqueued response, success or error.
func (c *Controller) runWorker() {
	defer c.workerWG.Done()
	for {
		req, ok := c.requests.Pop()
		if !ok {
			return
		}
		_ = c.responses.Push(c.execute(req))
	}
}

// execute runs one engine call and converts any failure, including a panic,
// into an error response. Failures are request-scoped: the worker survives.
func (c *Controller) execute(req protocol.Request) (resp protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = protocol.NewError(req.ID, "EnginePanic", fmt.Sprint(r))
		}
	}()

	// An in-flight decode always runs to completion; interrupts only stop
	// ingestion, so the engine call gets a background context.
	translation, err := c.engine.Translate(context.Background(), req.Source, req.Suggestions)
	if err != nil {
		return protocol.NewError(req.ID, engine.FaultKind(err), engine.FaultMessage(err))
	}
	return protocol.NewTranslation(req.ID, translation)
}
