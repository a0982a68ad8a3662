package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// Bind parses an HTTP request into v.
type Bind func(r *http.Request, v any) error

// BindJSON decodes a strict JSON body of at most maxBytes into v. Unknown
// fields and trailing data are rejected. maxBytes <= 0 disables the limit.
func BindJSON(maxBytes int64) Bind {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content type", ErrUnsupportedMediaType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q", ErrUnsupportedMediaType, contentType)
		}

		body := r.Body
		if maxBytes > 0 {
			body = http.MaxBytesReader(nil, r.Body, maxBytes)
		}

		decoder := json.NewDecoder(body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			var maxErr *http.MaxBytesError
			switch {
			case errors.As(err, &maxErr):
				return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxErr.Limit)
			case errors.Is(err, io.EOF):
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			default:
				return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
			}
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxErr.Limit)
			}
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		return nil
	}
}
