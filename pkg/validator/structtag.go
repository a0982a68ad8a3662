package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

// Struct tags registered on top of the go-playground built-ins.
const (
	TagCPF             = "cpf"
	TagBRPhone         = "br_phone"
	TagComplexPassword = "complex_password"
)

// StructValidator validates structs through `validate` tags and reports
// failures as ValidationErrors keyed by the JSON field name.
type StructValidator struct {
	validate *playground.Validate
}

// NewStructValidator returns a validator with the cpf, br_phone and
// complex_password tags registered.
func NewStructValidator() *StructValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	mustRegister(v, TagCPF, func(fl playground.FieldLevel) bool {
		_, err := ValidateCPF(fl.Field().String())
		return err == nil
	})
	mustRegister(v, TagBRPhone, func(fl playground.FieldLevel) bool {
		_, err := ValidatePhone(fl.Field().String())
		return err == nil
	})
	mustRegister(v, TagComplexPassword, func(fl playground.FieldLevel) bool {
		return ComplexPasswordValidator{}.Validate(fl.Field().String(), nil) == nil
	})

	return &StructValidator{validate: v}
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: register %q: %v", tag, err))
	}
}

// Struct validates s. It returns nil, ValidationErrors, or the underlying
// error when s is not a struct.
func (sv *StructValidator) Struct(s any) error {
	err := sv.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, convertFieldError(fe))
	}
	return errs
}

var defaultStructValidator = sync.OnceValue(NewStructValidator)

// ValidateStruct validates s with a shared StructValidator.
func ValidateStruct(s any) error {
	return defaultStructValidator().Struct(s)
}

func convertFieldError(fe playground.FieldError) ValidationError {
	field := fe.Field()
	value, _ := fe.Value().(string)

	switch fe.Tag() {
	case TagCPF:
		_, err := ValidateCPF(value)
		return valueErrorOrDefault(err, field, CodeCPFInvalid, "CPF inválido.", "validation.cpf_invalid")
	case TagBRPhone:
		_, err := ValidatePhone(value)
		return valueErrorOrDefault(err, field, CodePhoneInvalidLength, "Telefone deve conter 10 ou 11 dígitos.", "validation.phone_length")
	case TagComplexPassword:
		return ComplexPassword(field, value).Error
	case "required":
		return tagError(field, "required", "Este campo é obrigatório.", "validation.required", nil)
	case "email":
		return tagError(field, "email_invalid", "Informe um endereço de e-mail válido.", "validation.email", nil)
	case "max":
		return tagError(field, "too_long",
			fmt.Sprintf("Certifique-se de que este valor tenha no máximo %s caracteres.", fe.Param()),
			"validation.max_length", map[string]any{"max": fe.Param()})
	case "min":
		return tagError(field, "too_short",
			fmt.Sprintf("Certifique-se de que este valor tenha pelo menos %s caracteres.", fe.Param()),
			"validation.min_length", map[string]any{"min": fe.Param()})
	case "oneof":
		return tagError(field, "invalid_choice", "Selecione uma opção válida.", "validation.invalid_choice",
			map[string]any{"choices": fe.Param()})
	}

	return tagError(field, fe.Tag(), "Valor inválido.", "validation.invalid", map[string]any{"tag": fe.Tag()})
}

func valueErrorOrDefault(err error, field, code, message, key string) ValidationError {
	var verr *ValueError
	if errors.As(err, &verr) {
		return verr.ToValidationError(field)
	}
	return tagError(field, code, message, key, nil)
}

func tagError(field, code, message, key string, values map[string]any) ValidationError {
	tv := map[string]any{"field": field}
	for k, v := range values {
		tv[k] = v
	}
	return ValidationError{
		Field:             field,
		Code:              code,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: tv,
	}
}
