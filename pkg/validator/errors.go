package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidLength is returned when a value has the wrong number of digits or characters.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when a value has the right shape but fails a checksum or range check.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidFormat is returned when a value cannot be rendered in the requested format.
	ErrInvalidFormat = errors.New("invalid format")
)

// ValueError is returned by the document and phone validators.
// Kind is ErrInvalidLength or ErrInvalidValue and is exposed through Unwrap,
// so errors.Is(err, ErrInvalidLength) distinguishes the two failure classes.
type ValueError struct {
	Kind           error
	Code           string
	Message        string
	TranslationKey string
}

func (e *ValueError) Error() string {
	return e.Message
}

func (e *ValueError) Unwrap() error {
	return e.Kind
}

// ToValidationError converts the error into a field-level validation error.
func (e *ValueError) ToValidationError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Code:           e.Code,
		Message:        e.Message,
		TranslationKey: e.TranslationKey,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

func newLengthError(code, message, key string) *ValueError {
	return &ValueError{Kind: ErrInvalidLength, Code: code, Message: message, TranslationKey: key}
}

func newInvalidValueError(code, message, key string) *ValueError {
	return &ValueError{Kind: ErrInvalidValue, Code: code, Message: message, TranslationKey: key}
}
