package validator

import (
	"strings"
	"unicode"
)

// PasswordSymbols is the set of characters accepted as "special" by the
// complexity check.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

const (
	CodePasswordNoUpper  = "password_no_upper"
	CodePasswordNoLower  = "password_no_lower"
	CodePasswordNoNumber = "password_no_number"
	CodePasswordNoSymbol = "password_no_symbol"
)

const complexPasswordHelpText = "Sua senha deve conter pelo menos uma letra maiúscula, uma minúscula, um número e um caractere especial."

// PasswordUser carries the account attributes some password checks compare against.
type PasswordUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// ComplexPasswordValidator requires at least one uppercase letter, one
// lowercase letter, one digit and one symbol from PasswordSymbols.
// Checks run in that order and only the first failure is reported.
// It does not enforce a minimum length.
type ComplexPasswordValidator struct{}

// Validate checks password against the complexity rules. The user is
// accepted for interface compatibility and ignored.
func (ComplexPasswordValidator) Validate(password string, _ *PasswordUser) error {
	return ApplyFirst(complexPasswordRules("password", password)...)
}

func (ComplexPasswordValidator) HelpText() string {
	return complexPasswordHelpText
}

func (ComplexPasswordValidator) HelpTextKey() string {
	return "validation.password_complex_help"
}

// ComplexPassword validates value against the complexity rules, reporting
// the first unmet requirement under field.
func ComplexPassword(field, value string) Rule {
	rules := complexPasswordRules(field, value)

	rule := Rule{
		Check: func() bool { return true },
		Error: rules[0].Error,
	}
	for _, r := range rules {
		if !r.Check() {
			rule.Error = r.Error
			rule.Check = func() bool { return false }
			break
		}
	}
	return rule
}

func complexPasswordRules(field, value string) []Rule {
	return []Rule{
		{
			Check: func() bool { return strings.IndexFunc(value, unicode.IsUpper) >= 0 },
			Error: passwordError(field, CodePasswordNoUpper, "A senha deve conter pelo menos uma letra maiúscula.", "validation.password_no_upper"),
		},
		{
			Check: func() bool { return strings.IndexFunc(value, unicode.IsLower) >= 0 },
			Error: passwordError(field, CodePasswordNoLower, "A senha deve conter pelo menos uma letra minúscula.", "validation.password_no_lower"),
		},
		{
			Check: func() bool { return strings.IndexFunc(value, unicode.IsDigit) >= 0 },
			Error: passwordError(field, CodePasswordNoNumber, "A senha deve conter pelo menos um número.", "validation.password_no_number"),
		},
		{
			Check: func() bool { return strings.ContainsAny(value, PasswordSymbols) },
			Error: passwordError(field, CodePasswordNoSymbol, "A senha deve conter pelo menos um caractere especial.", "validation.password_no_symbol"),
		},
	}
}

func passwordError(field, code, message, key string) ValidationError {
	return ValidationError{
		Field:          field,
		Code:           code,
		Message:        message,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}
