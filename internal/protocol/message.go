package protocol

// Request is a single translation job read from the input stream. It is
// immutable after decoding and consumed by exactly one worker.
type Request struct {
	ID          int64
	Source      []string
	Suggestions []Suggestion
}

// Suggestion is a prior (source, target) sentence pair with a confidence
// score, supplied to steer the decoding engine.
type Suggestion struct {
	Source []string
	Target []string
	Score  float64
}

// Response is the outcome of one Request. Exactly one of Translation or Err
// is set; NewTranslation and NewError are the only constructors.
type Response struct {
	ID          int64
	Translation []string
	Err         *Error
}

// Error is the structured failure carried by an error Response.
type Error struct {
	Type    string
	Message string
}

// NewTranslation builds a success Response.
func NewTranslation(id int64, translation []string) Response {
	return Response{ID: id, Translation: translation}
}

// NewError builds a failure Response.
func NewError(id int64, kind, message string) Response {
	return Response{ID: id, Err: &Error{Type: kind, Message: message}}
}

// IsError reports whether the response carries a structured error.
func (r Response) IsError() bool { return r.Err != nil }
