package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Wire shapes. id and score are RawMessage because clients send them both as
// JSON numbers and as quoted strings.
type wireRequest struct {
	ID          json.RawMessage  `json:"id"`
	Source      *string          `json:"source"`
	Suggestions []wireSuggestion `json:"suggestions"`
}

type wireSuggestion struct {
	Source *string         `json:"source"`
	Target *string         `json:"target"`
	Score  json.RawMessage `json:"score"`
}

type wireError struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

type wireResponse struct {
	ID          int64      `json:"id"`
	Translation *string    `json:"translation,omitempty"`
	Error       *wireError `json:"error,omitempty"`
}

// Tokenize splits a sentence on every single space. Runs of spaces are not
// collapsed, so "a  b" yields ["a", "", "b"] and "" yields [""].
func Tokenize(s string) []string { return strings.Split(s, " ") }

// Detokenize joins tokens with single spaces, the exact inverse of Tokenize.
func Detokenize(tokens []string) string { return strings.Join(tokens, " ") }

// DecodeRequest parses one input line into a Request.
func DecodeRequest(line []byte) (Request, error) {
	var w wireRequest
	if err := json.Unmarshal(line, &w); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	if w.ID == nil {
		return Request{}, errors.New("decode request: missing id")
	}
	id, err := coerceInt(w.ID)
	if err != nil {
		return Request{}, fmt.Errorf("decode request: id: %w", err)
	}
	if w.Source == nil {
		return Request{}, errors.New("decode request: missing source")
	}
	req := Request{ID: id, Source: Tokenize(*w.Source)}
	for i, ws := range w.Suggestions {
		if ws.Source == nil || ws.Target == nil {
			return Request{}, fmt.Errorf("decode request: suggestion %d: missing source or target", i)
		}
		score := 0.0
		if ws.Score != nil {
			score, err = coerceFloat(ws.Score)
			if err != nil {
				return Request{}, fmt.Errorf("decode request: suggestion %d: score: %w", i, err)
			}
		}
		req.Suggestions = append(req.Suggestions, Suggestion{
			Source: Tokenize(*ws.Source),
			Target: Tokenize(*ws.Target),
			Score:  score,
		})
	}
	return req, nil
}

// ExtractID recovers the request id from a line that failed full decoding.
// Used by the malformed-input "respond" policy to address the error response.
func ExtractID(line []byte) (int64, bool) {
	var w struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(line, &w); err != nil || w.ID == nil {
		return 0, false
	}
	id, err := coerceInt(w.ID)
	if err != nil {
		return 0, false
	}
	return id, true
}

// EncodeResponse serializes a Response to a single JSON line without the
// trailing newline.
func EncodeResponse(r Response) ([]byte, error) {
	w := wireResponse{ID: r.ID}
	if r.Err != nil {
		w.Error = &wireError{Type: r.Err.Type, Message: r.Err.Message}
	} else {
		joined := Detokenize(r.Translation)
		w.Translation = &joined
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return b, nil
}

// coerceInt accepts JSON numbers and quoted numeric strings. Floats are
// truncated toward zero, matching int() coercion in the reference clients.
func coerceInt(raw json.RawMessage) (int64, error) {
	s := unquote(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not integer-coercible: %q", s)
	}
	return int64(f), nil
}

// coerceFloat accepts JSON numbers and quoted numeric strings.
func coerceFloat(raw json.RawMessage) (float64, error) {
	s := unquote(raw)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not float-coercible: %q", s)
	}
	return f, nil
}

func unquote(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}
