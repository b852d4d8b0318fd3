package protocol

import (
	"strings"
	"testing"
)

func TestDecodeRequestBasic(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"id":1,"source":"hello and goodbye"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.ID != 1 {
		t.Fatalf("id: got %d", req.ID)
	}
	if got := strings.Join(req.Source, "|"); got != "hello|and|goodbye" {
		t.Fatalf("source tokens: %q", got)
	}
	if len(req.Suggestions) != 0 {
		t.Fatalf("expected no suggestions")
	}
}

func TestDecodeRequestSuggestions(t *testing.T) {
	line := `{"id":1,"source":"hello","suggestions":[` +
		`{"source":"A B","target":"a b","score":"0.1"},` +
		`{"source":"C","target":"c","score":0.2},` +
		`{"source":"x","target":"y"}]}`
	req, err := DecodeRequest([]byte(line))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(req.Suggestions) != 3 {
		t.Fatalf("suggestions: got %d", len(req.Suggestions))
	}
	if req.Suggestions[0].Score != 0.1 {
		t.Fatalf("string score: got %v", req.Suggestions[0].Score)
	}
	if req.Suggestions[1].Score != 0.2 {
		t.Fatalf("numeric score: got %v", req.Suggestions[1].Score)
	}
	// score defaults to 0 when absent
	if req.Suggestions[2].Score != 0 {
		t.Fatalf("default score: got %v", req.Suggestions[2].Score)
	}
	if got := strings.Join(req.Suggestions[0].Source, "|"); got != "A|B" {
		t.Fatalf("suggestion source tokens: %q", got)
	}
}

func TestTokenizeKeepsEmptyTokens(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"id":7,"source":"a  b"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(req.Source) != 3 || req.Source[1] != "" {
		t.Fatalf("double space must yield empty token, got %q", req.Source)
	}
	if Detokenize(req.Source) != "a  b" {
		t.Fatalf("detokenize must round-trip, got %q", Detokenize(req.Source))
	}
}

func TestDecodeRequestIDCoercion(t *testing.T) {
	for _, tc := range []struct {
		line string
		want int64
	}{
		{`{"id":"5","source":"x"}`, 5},
		{`{"id":5.0,"source":"x"}`, 5},
		{`{"id":5.9,"source":"x"}`, 5},
	} {
		req, err := DecodeRequest([]byte(tc.line))
		if err != nil {
			t.Fatalf("decode %s: %v", tc.line, err)
		}
		if req.ID != tc.want {
			t.Fatalf("decode %s: id %d, want %d", tc.line, req.ID, tc.want)
		}
	}
}

func TestDecodeRequestErrors(t *testing.T) {
	for _, line := range []string{
		`not json`,
		`{"source":"x"}`,
		`{"id":1}`,
		`{"id":"abc","source":"x"}`,
		`{"id":1,"source":"x","suggestions":[{"source":"a"}]}`,
	} {
		if _, err := DecodeRequest([]byte(line)); err == nil {
			t.Fatalf("expected error for %s", line)
		}
	}
}

func TestExtractID(t *testing.T) {
	if id, ok := ExtractID([]byte(`{"id":42,"source":12}`)); !ok || id != 42 {
		t.Fatalf("got %d %v", id, ok)
	}
	if _, ok := ExtractID([]byte(`garbage`)); ok {
		t.Fatalf("extract from garbage should fail")
	}
	if _, ok := ExtractID([]byte(`{"source":"x"}`)); ok {
		t.Fatalf("extract without id should fail")
	}
}

func TestEncodeResponseSuccess(t *testing.T) {
	b, err := EncodeResponse(NewTranslation(1, []string{"a", "b", "c"}))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := string(b); got != `{"id":1,"translation":"a b c"}` {
		t.Fatalf("wire form: %s", got)
	}
}

func TestEncodeResponseError(t *testing.T) {
	b, err := EncodeResponse(NewError(2, "RuntimeError", "boom"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := string(b); got != `{"id":2,"error":{"type":"RuntimeError","message":"boom"}}` {
		t.Fatalf("wire form: %s", got)
	}
}

func TestEncodeResponseErrorOmitsEmptyMessage(t *testing.T) {
	b, err := EncodeResponse(NewError(3, "OOM", ""))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := string(b); got != `{"id":3,"error":{"type":"OOM"}}` {
		t.Fatalf("wire form: %s", got)
	}
}

func TestEncodeEmptyTranslationKeepsField(t *testing.T) {
	// An empty translation is still a success, not an error.
	b, err := EncodeResponse(NewTranslation(4, []string{""}))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := string(b); got != `{"id":4,"translation":""}` {
		t.Fatalf("wire form: %s", got)
	}
}
