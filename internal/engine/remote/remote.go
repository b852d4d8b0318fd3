package remote

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hamid4356/MMT/internal/protocol"
)

// Options tunes the remote engine.
type Options struct {
	// Threads overrides the daemon-reported thread count when > 0.
	Threads int
	// Timeout bounds a single HTTP call. Defaults to 30s.
	Timeout time.Duration
}

// Engine forwards Translate calls to a remote decoder daemon.
type Engine struct {
	base    string
	http    *resty.Client
	threads int
}

type translateRequest struct {
	Source      string           `json:"source"`
	Suggestions []wireSuggestion `json:"suggestions,omitempty"`
}

type wireSuggestion struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Score  float64 `json:"score"`
}

type translateResponse struct {
	Translation *string `json:"translation"`
	Error       *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type infoResponse struct {
	Threads int `json:"threads"`
}

// New creates a remote engine for the daemon at baseURL. The thread count is
// asked from the daemon's /info endpoint; Options.Threads overrides it and a
// failed probe falls back to GOMAXPROCS.
func New(baseURL string, opts Options) (*Engine, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	e := &Engine{
		base: strings.TrimRight(baseURL, "/"),
		http: resty.New().SetTimeout(timeout),
	}
	e.threads = opts.Threads
	if e.threads <= 0 {
		e.threads = e.probeThreads()
	}
	return e, nil
}

func (e *Engine) probeThreads() int {
	var info infoResponse
	r, err := e.http.R().SetResult(&info).Get(e.base + "/info")
	if err == nil && !r.IsError() && info.Threads > 0 {
		return info.Threads
	}
	return runtime.GOMAXPROCS(0)
}

// ThreadCount reports the daemon-supplied pool size.
func (e *Engine) ThreadCount() int { return e.threads }

// Translate forwards one sentence to the daemon.
func (e *Engine) Translate(ctx context.Context, source []string, suggestions []protocol.Suggestion) ([]string, error) {
	body := translateRequest{Source: protocol.Detokenize(source)}
	for _, s := range suggestions {
		body.Suggestions = append(body.Suggestions, wireSuggestion{
			Source: protocol.Detokenize(s.Source),
			Target: protocol.Detokenize(s.Target),
			Score:  s.Score,
		})
	}

	var resp translateResponse
	r, err := e.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(e.base + "/translate")
	if err != nil {
		return nil, newFault("RemoteUnavailable", err)
	}
	if r.IsError() {
		return nil, newFault("RemoteError", fmt.Errorf("%s: %s", r.Status(), strings.TrimSpace(r.String())))
	}
	if resp.Error != nil {
		return nil, newFault(resp.Error.Type, errors.New(resp.Error.Message))
	}
	if resp.Translation == nil {
		return nil, newFault("RemoteError", errors.New("daemon returned neither translation nor error"))
	}
	return protocol.Tokenize(*resp.Translation), nil
}

// Close implements the engine contract. The HTTP client holds no resources
// that outlive requests.
func (e *Engine) Close() error { return nil }

// fault is a classified remote failure.
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
