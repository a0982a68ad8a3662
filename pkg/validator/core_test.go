package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armoredgo/armored/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "cpf", Message: "CPF inválido."})
		assert.Equal(t, "validation failed: cpf: CPF inválido.", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "password", Code: "password_too_short", Message: "too short"},
		{Field: "email", Code: "email_invalid", Message: "bad email"},
		{Field: "password", Code: "password_no_upper", Message: "no upper"},
	}

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("phone"))
	assert.Equal(t, []string{"too short", "no upper"}, errs.Get("password"))
	assert.Len(t, errs.GetErrors("password"), 2)
	assert.Nil(t, errs.GetErrors("phone"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Equal(t, []string{"password_too_short", "email_invalid", "password_no_upper"}, errs.Codes())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "a"}}
	failB := validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "b", Code: "b"}}
	failC := validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "c", Code: "c"}}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("returns nil with no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		err := validator.Apply(failB, pass, failC)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"b", "c"}, verrs.Codes())
	})
}

func TestApplyFirst(t *testing.T) {
	t.Parallel()

	calls := 0
	counted := func(ok bool, code string) validator.Rule {
		return validator.Rule{
			Check: func() bool { calls++; return ok },
			Error: validator.ValidationError{Field: "f", Code: code},
		}
	}

	err := validator.ApplyFirst(counted(true, "a"), counted(false, "b"), counted(false, "c"))
	require.Error(t, err)
	assert.Equal(t, []string{"b"}, validator.ExtractValidationErrors(err).Codes())
	assert.Equal(t, 2, calls, "evaluation stops at the first failure")

	assert.NoError(t, validator.ApplyFirst(counted(true, "a")))
}

func TestValidationErrors_Is(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Rule{Check: func() bool { return false }})
	assert.ErrorIs(t, err, validator.ErrValidationFailed)

	wrapped := fmt.Errorf("create profile: %w", err)
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
}

func TestValueError(t *testing.T) {
	t.Parallel()

	_, err := validator.ValidateCPF("123")
	require.Error(t, err)

	var verr *validator.ValueError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, validator.ErrInvalidLength)
	assert.NotErrorIs(t, err, validator.ErrInvalidValue)

	ve := verr.ToValidationError("document")
	assert.Equal(t, "document", ve.Field)
	assert.Equal(t, validator.CodeCPFInvalidLength, ve.Code)
	assert.Equal(t, "validation.cpf_length", ve.TranslationKey)
	assert.Equal(t, "document", ve.TranslationValues["field"])
}
