package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/armoredgo/armored/pkg/i18n"
	"github.com/armoredgo/armored/pkg/logger"
	"github.com/armoredgo/armored/pkg/validator"
)

const (
	codeValidationFailed = "validation_failed"
	keyValidationFailed  = "errors.validation_failed"
)

// errorInfo is the classified form of a request error.
type errorInfo struct {
	status int
	code   string
	key    string
	fields validator.ValidationErrors
}

func classifyError(err error) errorInfo {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return errorInfo{
			status: http.StatusUnprocessableEntity,
			code:   codeValidationFailed,
			key:    keyValidationFailed,
			fields: verrs,
		}
	}

	httpErr := ErrInternal
	errors.As(err, &httpErr)
	return errorInfo{status: httpErr.Status, code: httpErr.Code, key: httpErr.TranslationKey()}
}

func logLevel(status int) slog.Level {
	if status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler renders errors as JSON envelopes with messages translated
// into the request language. Validation failures become 422 responses with
// per-field details; HTTPError values keep their status; anything else is
// reported as 500 without exposing the error text.
func NewErrorHandler(tr *i18n.Translator, log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		ctx := r.Context()
		info := classifyError(err)

		detail := &ErrorDetail{
			Code:    info.code,
			Message: tr.Tvc(ctx, info.key, info.code, nil),
		}
		if len(info.fields) > 0 {
			detail.Details = make(map[string][]FieldError, len(info.fields))
			for _, fe := range info.fields {
				detail.Details[fe.Field] = append(detail.Details[fe.Field], FieldError{
					Code:    fe.Code,
					Message: tr.Tvc(ctx, fe.TranslationKey, fe.Message, fe.TranslationValues),
				})
			}
		}

		attrs := []slog.Attr{
			logger.Component("api"),
			logger.HTTPRequest(r.Method, r.URL.Path, info.status),
			logger.Code(info.code),
		}
		if len(info.fields) > 0 {
			attrs = append(attrs, logger.Codes(info.fields.Codes()))
		}
		if info.status >= http.StatusInternalServerError {
			attrs = append(attrs, logger.Error(err))
		}
		log.LogAttrs(ctx, logLevel(info.status), "request failed", attrs...)

		writeJSON(w, info.status, JSONResponse{Error: detail})
	}
}
