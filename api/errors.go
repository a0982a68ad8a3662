package api

import (
	"errors"
	"net/http"
)

// HTTPError is an error that maps to a status code and a stable error code.
// The code doubles as the translation key suffix: "errors." + Code.
type HTTPError struct {
	Status int
	Code   string
}

func (e HTTPError) Error() string {
	return e.Code
}

// TranslationKey returns the locale key of the error message.
func (e HTTPError) TranslationKey() string {
	return "errors." + e.Code
}

var (
	ErrBadRequest           = HTTPError{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrInvalidJSON          = HTTPError{Status: http.StatusBadRequest, Code: "invalid_json"}
	ErrUnsupportedMediaType = HTTPError{Status: http.StatusUnsupportedMediaType, Code: "unsupported_media_type"}
	ErrRequestTooLarge      = HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "request_too_large"}
	ErrNotFound             = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"}
	ErrTooManyRequests      = HTTPError{Status: http.StatusTooManyRequests, Code: "rate_limited"}
	ErrServiceUnavailable   = HTTPError{Status: http.StatusServiceUnavailable, Code: "service_unavailable"}
	ErrInternal             = HTTPError{Status: http.StatusInternalServerError, Code: "internal"}
)

// ErrNilResponse is reported when a handler returns a nil Response.
var ErrNilResponse = errors.New("handler returned nil response")
