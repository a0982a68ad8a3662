package api

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every JSON body the service writes.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to the
// failures reported for them, in order.
type ErrorDetail struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details map[string][]FieldError `json:"details,omitempty"`
}

// FieldError is a single field failure.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response renders itself to an http.ResponseWriter. A non-nil error is
// passed to the error handler; nothing must have been written in that case.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, j.status, j.body)
	return nil
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets the response status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithMeta attaches metadata to the envelope.
func WithMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps data in the envelope with status 200 unless overridden.
func JSON(data any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: data}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Fail returns a response that hands err to the error handler.
func Fail(err error) Response {
	return errorResponse{err: err}
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
