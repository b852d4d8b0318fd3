package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hamid4356/MMT/internal/protocol"
)

// faulter matches the classification surface the dispatcher relies on.
type faulter interface {
	FaultKind() string
	FaultMessage() string
}

func newTestEngine(t *testing.T, handler http.Handler) (*Engine, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	e, err := New(srv.URL, Options{Threads: 2})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e, srv
}

func TestTranslateForwardsRequest(t *testing.T) {
	var seen translateRequest
	e, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"translation": "hallo welt"})
	}))

	got, err := e.Translate(context.Background(), []string{"hello", "world"},
		[]protocol.Suggestion{{Source: []string{"a"}, Target: []string{"b"}, Score: 0.25}})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if protocol.Detokenize(got) != "hallo welt" {
		t.Fatalf("translation: %q", got)
	}
	if seen.Source != "hello world" {
		t.Fatalf("forwarded source: %q", seen.Source)
	}
	if len(seen.Suggestions) != 1 || seen.Suggestions[0].Score != 0.25 {
		t.Fatalf("forwarded suggestions: %+v", seen.Suggestions)
	}
}

func TestDaemonErrorBecomesFault(t *testing.T) {
	e, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "OutOfMemory", "message": "beam too wide"},
		})
	}))

	_, err := e.Translate(context.Background(), []string{"x"}, nil)
	if err == nil {
		t.Fatal("expected fault")
	}
	f, ok := err.(faulter)
	if !ok {
		t.Fatalf("error is not classified: %T", err)
	}
	if f.FaultKind() != "OutOfMemory" || f.FaultMessage() != "beam too wide" {
		t.Fatalf("fault: %s / %s", f.FaultKind(), f.FaultMessage())
	}
}

func TestHTTPErrorBecomesFault(t *testing.T) {
	e, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "daemon busy", http.StatusServiceUnavailable)
	}))

	_, err := e.Translate(context.Background(), []string{"x"}, nil)
	if err == nil {
		t.Fatal("expected fault")
	}
	if f, ok := err.(faulter); !ok || f.FaultKind() != "RemoteError" {
		t.Fatalf("fault: %v", err)
	}
}

func TestThreadCountFromInfoEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/info" {
			json.NewEncoder(w).Encode(map[string]int{"threads": 5})
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	e, err := New(srv.URL, Options{})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if e.ThreadCount() != 5 {
		t.Fatalf("threads: got %d", e.ThreadCount())
	}
}

func TestThreadsOptionSkipsProbe(t *testing.T) {
	// No server at all: the override must avoid the probe entirely.
	e, err := New("http://127.0.0.1:1", Options{Threads: 3})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if e.ThreadCount() != 3 {
		t.Fatalf("threads: got %d", e.ThreadCount())
	}
}
