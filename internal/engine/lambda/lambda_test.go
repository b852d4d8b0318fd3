package lambda

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/hamid4356/MMT/internal/protocol"
)

type fakeInvoker struct {
	lastInput *awslambda.InvokeInput
	output    *awslambda.InvokeOutput
	err       error
}

func (f *fakeInvoker) Invoke(_ context.Context, params *awslambda.InvokeInput, _ ...func(*awslambda.Options)) (*awslambda.InvokeOutput, error) {
	f.lastInput = params
	return f.output, f.err
}

type faulter interface {
	FaultKind() string
	FaultMessage() string
}

func TestTranslateInvokesFunction(t *testing.T) {
	inv := &fakeInvoker{output: &awslambda.InvokeOutput{
		Payload: []byte(`{"translation":"bonjour le monde"}`),
	}}
	e := NewWithInvoker(inv, "decoder-fn", Options{Threads: 2})

	got, err := e.Translate(context.Background(), []string{"hello", "world"}, nil)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if protocol.Detokenize(got) != "bonjour le monde" {
		t.Fatalf("translation: %q", got)
	}
	if name := aws.ToString(inv.lastInput.FunctionName); name != "decoder-fn" {
		t.Fatalf("function: %q", name)
	}
	var payload invokePayload
	if err := json.Unmarshal(inv.lastInput.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Source != "hello world" {
		t.Fatalf("payload source: %q", payload.Source)
	}
}

func TestFunctionErrorBecomesFault(t *testing.T) {
	inv := &fakeInvoker{output: &awslambda.InvokeOutput{
		FunctionError: aws.String("Unhandled"),
		Payload:       []byte(`{"errorMessage":"oom"}`),
	}}
	e := NewWithInvoker(inv, "decoder-fn", Options{})

	_, err := e.Translate(context.Background(), []string{"x"}, nil)
	if err == nil {
		t.Fatal("expected fault")
	}
	if f, ok := err.(faulter); !ok || f.FaultKind() != "LambdaError" {
		t.Fatalf("fault: %v", err)
	}
}

func TestStructuredErrorBecomesFault(t *testing.T) {
	inv := &fakeInvoker{output: &awslambda.InvokeOutput{
		Payload: []byte(`{"error":{"type":"ModelNotLoaded","message":"cold start"}}`),
	}}
	e := NewWithInvoker(inv, "decoder-fn", Options{})

	_, err := e.Translate(context.Background(), []string{"x"}, nil)
	f, ok := err.(faulter)
	if !ok {
		t.Fatalf("error is not classified: %v", err)
	}
	if f.FaultKind() != "ModelNotLoaded" || f.FaultMessage() != "cold start" {
		t.Fatalf("fault: %s / %s", f.FaultKind(), f.FaultMessage())
	}
}

func TestThreadsDefault(t *testing.T) {
	e := NewWithInvoker(&fakeInvoker{}, "fn", Options{})
	if e.ThreadCount() <= 0 {
		t.Fatalf("threads: got %d", e.ThreadCount())
	}
}
