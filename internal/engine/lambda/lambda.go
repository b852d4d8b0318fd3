package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/hamid4356/MMT/internal/protocol"
)

// Invoker is the slice of the Lambda client the engine uses. Tests supply a
// fake.
type Invoker interface {
	Invoke(ctx context.Context, params *awslambda.InvokeInput, optFns ...func(*awslambda.Options)) (*awslambda.InvokeOutput, error)
}

// Options tunes the Lambda engine.
type Options struct {
	// Threads sizes the local worker pool. Defaults to GOMAXPROCS.
	Threads int
}

// Engine invokes an AWS Lambda decoder function per request.
type Engine struct {
	client   Invoker
	function string
	threads  int
}

type invokePayload struct {
	Source      string           `json:"source"`
	Suggestions []wireSuggestion `json:"suggestions,omitempty"`
}

type wireSuggestion struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Score  float64 `json:"score"`
}

type invokeResult struct {
	Translation *string `json:"translation"`
	Error       *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// New creates a Lambda engine using the default AWS credential chain.
func New(ctx context.Context, function string, opts Options) (*Engine, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewWithInvoker(awslambda.NewFromConfig(cfg), function, opts), nil
}

// NewWithInvoker creates a Lambda engine over an existing client.
func NewWithInvoker(client Invoker, function string, opts Options) *Engine {
	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	return &Engine{client: client, function: function, threads: threads}
}

// ThreadCount sizes the local worker pool.
func (e *Engine) ThreadCount() int { return e.threads }

// Translate invokes the decoder function synchronously.
func (e *Engine) Translate(ctx context.Context, source []string, suggestions []protocol.Suggestion) ([]string, error) {
	payload := invokePayload{Source: protocol.Detokenize(source)}
	for _, s := range suggestions {
		payload.Suggestions = append(payload.Suggestions, wireSuggestion{
			Source: protocol.Detokenize(s.Source),
			Target: protocol.Detokenize(s.Target),
			Score:  s.Score,
		})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newFault("LambdaError", err)
	}

	out, err := e.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName: aws.String(e.function),
		Payload:      body,
	})
	if err != nil {
		return nil, newFault("LambdaUnavailable", err)
	}
	if out.FunctionError != nil {
		return nil, newFault("LambdaError", fmt.Errorf("%s: %s", *out.FunctionError, string(out.Payload)))
	}

	var result invokeResult
	if err := json.Unmarshal(out.Payload, &result); err != nil {
		return nil, newFault("LambdaError", fmt.Errorf("decode payload: %w", err))
	}
	if result.Error != nil {
		return nil, newFault(result.Error.Type, errors.New(result.Error.Message))
	}
	if result.Translation == nil {
		return nil, newFault("LambdaError", errors.New("function returned neither translation nor error"))
	}
	return protocol.Tokenize(*result.Translation), nil
}

// Close implements the engine contract. The SDK client is stateless here.
func (e *Engine) Close() error { return nil }

// fault is a classified Lambda failure.
type fault struct {
	kind string
	err  error
}

func newFault(kind string, err error) error { return &fault{kind: kind, err: err} }

func (f *fault) Error() string {
	if f.err == nil {
		return f.kind
	}
	return f.kind + ": " + f.err.Error()
}

func (f *fault) Unwrap() error { return f.err }

func (f *fault) FaultKind() string { return f.kind }

func (f *fault) FaultMessage() string {
	if f.err == nil {
		return ""
	}
	return f.err.Error()
}
