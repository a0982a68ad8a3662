package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultPasswordMinLength = 8

	CodePasswordTooShort        = "password_too_short"
	CodePasswordTooCommon       = "password_too_common"
	CodePasswordEntirelyNumeric = "password_entirely_numeric"
	CodePasswordTooSimilar      = "password_too_similar"
)

// commonPasswords is a curated list of frequently compromised passwords, lower-cased.
var commonPasswords = map[string]bool{
	"password":      true,
	"123456":        true,
	"password123":   true,
	"admin":         true,
	"qwerty":        true,
	"abc123":        true,
	"letmein":       true,
	"welcome":       true,
	"monkey":        true,
	"1234567890":    true,
	"dragon":        true,
	"sunshine":      true,
	"iloveyou":      true,
	"princess":      true,
	"football":      true,
	"charlie":       true,
	"aa123456":      true,
	"donald":        true,
	"password1":     true,
	"qwerty123":     true,
	"12345678":      true,
	"123456789":     true,
	"1234":          true,
	"12345":         true,
	"123123":        true,
	"111111":        true,
	"000000":        true,
	"qwertyuiop":    true,
	"asdfghjkl":     true,
	"zxcvbnm":       true,
	"qwerty12":      true,
	"qwerty1":       true,
	"password12":    true,
	"password!":     true,
	"admin123":      true,
	"administrator": true,
	"root":          true,
	"toor":          true,
	"guest":         true,
	"test":          true,
	"testing":       true,
	"user":          true,
	"login":         true,
	"pass":          true,
	"master":        true,
	"secret":        true,
	"trustno1":      true,
	"baseball":      true,
	"basketball":    true,
	"soccer":        true,
	"hockey":        true,
	"tennis":        true,
	"golf":          true,
	"michael":       true,
	"jennifer":      true,
	"jessica":       true,
	"ashley":        true,
	"sarah":         true,
	"amanda":        true,
	"joshua":        true,
	"matthew":       true,
	"daniel":        true,
	"david":         true,
	"christopher":   true,
	"andrew":        true,
	"superman":      true,
	"batman":        true,
	"spiderman":     true,
	"pokemon":       true,
	"nintendo":      true,
	"windows":       true,
	"computer":      true,
	"internet":      true,
	"google":        true,
	"facebook":      true,
	"twitter":       true,
	"instagram":     true,
	"linkedin":      true,
	"amazon":        true,
	"apple":         true,
	"microsoft":     true,
	"samsung":       true,
	"iphone":        true,
	"android":       true,
	"freedom":       true,
	"america":       true,
	"eagle":         true,
	"flower":        true,
	"spring":        true,
	"summer":        true,
	"winter":        true,
	"autumn":        true,
	"shadow":        true,
	"midnight":      true,
	"silver":        true,
	"golden":        true,
	"diamond":       true,
	"rainbow":       true,
	"chocolate":     true,
	"vanilla":       true,
	"banana":        true,
	"orange":        true,
	"purple":        true,
	"yellow":        true,
	"jordan":        true,
	"hunter":        true,
	"jackson":       true,
	"madison":       true,
	"taylor":        true,
	"hannah":        true,
	"samantha":      true,
	"tyler":         true,
	"nicole":        true,
	"brittany":      true,
	"12341234":      true,
	"1q2w3e4r":      true,
	"1qaz2wsx":      true,
	"zaq12wsx":      true,
	"qazwsx":        true,
	"qazxsw":        true,
	"654321":        true,
	"987654321":     true,
	"abcdef":        true,
	"abcd1234":      true,
	"a1b2c3":        true,
	"123qwe":        true,
	"qwe123":        true,
	"asd123":        true,
	"123asd":        true,
	"zxc123":        true,
	"123zxc":        true,
	"senha":         true,
	"senha123":      true,
	"senha1234":     true,
	"mudar123":      true,
	"brasil":        true,
	"flamengo":      true,
	"corinthians":   true,
	"palmeiras":     true,
	"123mudar":      true,
	"abc12345":      true,
}

// PasswordValidator is a single password check. Failures are returned as
// ValidationErrors so policies can aggregate them.
type PasswordValidator interface {
	Validate(password string, user *PasswordUser) error
	HelpText() string
	HelpTextKey() string
}

// MinimumLengthValidator rejects passwords shorter than MinLength characters.
type MinimumLengthValidator struct {
	MinLength int
}

func (v MinimumLengthValidator) minLength() int {
	if v.MinLength <= 0 {
		return DefaultPasswordMinLength
	}
	return v.MinLength
}

func (v MinimumLengthValidator) Validate(password string, _ *PasswordUser) error {
	n := v.minLength()
	return Apply(Rule{
		Check: func() bool { return utf8.RuneCountInString(password) >= n },
		Error: ValidationError{
			Field:          "password",
			Code:           CodePasswordTooShort,
			Message:        fmt.Sprintf("Esta senha é muito curta. Ela precisa conter pelo menos %d caracteres.", n),
			TranslationKey: "validation.password_too_short",
			TranslationValues: map[string]any{
				"field":      "password",
				"min_length": n,
			},
		},
	})
}

func (v MinimumLengthValidator) HelpText() string {
	return fmt.Sprintf("Sua senha precisa conter pelo menos %d caracteres.", v.minLength())
}

func (MinimumLengthValidator) HelpTextKey() string {
	return "validation.password_too_short_help"
}

func (v MinimumLengthValidator) HelpTextValues() map[string]any {
	return map[string]any{"min_length": v.minLength()}
}

// CommonPasswordValidator rejects passwords found in the common password list.
// Comparison is case-insensitive and ignores surrounding whitespace.
type CommonPasswordValidator struct{}

func (CommonPasswordValidator) Validate(password string, _ *PasswordUser) error {
	return Apply(Rule{
		Check: func() bool { return !commonPasswords[strings.ToLower(strings.TrimSpace(password))] },
		Error: passwordError("password", CodePasswordTooCommon, "Esta senha é muito comum.", "validation.password_too_common"),
	})
}

func (CommonPasswordValidator) HelpText() string {
	return "Sua senha não pode ser uma senha comumente utilizada."
}

func (CommonPasswordValidator) HelpTextKey() string {
	return "validation.password_too_common_help"
}

// NumericPasswordValidator rejects passwords made only of digits.
type NumericPasswordValidator struct{}

func (NumericPasswordValidator) Validate(password string, _ *PasswordUser) error {
	return Apply(Rule{
		Check: func() bool { return !isAllDigits(password) },
		Error: passwordError("password", CodePasswordEntirelyNumeric, "Esta senha é inteiramente numérica.", "validation.password_entirely_numeric"),
	})
}

func (NumericPasswordValidator) HelpText() string {
	return "Sua senha não pode ser inteiramente numérica."
}

func (NumericPasswordValidator) HelpTextKey() string {
	return "validation.password_entirely_numeric_help"
}

// UserAttributeSimilarityValidator rejects passwords that contain the
// user's username, e-mail local part or names. Attribute fragments shorter
// than three characters are ignored.
type UserAttributeSimilarityValidator struct{}

func (UserAttributeSimilarityValidator) Validate(password string, user *PasswordUser) error {
	attr := similarAttribute(password, user)
	return Apply(Rule{
		Check: func() bool { return attr == "" },
		Error: ValidationError{
			Field:          "password",
			Code:           CodePasswordTooSimilar,
			Message:        "A senha é muito parecida com suas informações pessoais.",
			TranslationKey: "validation.password_too_similar",
			TranslationValues: map[string]any{
				"field":     "password",
				"attribute": attr,
			},
		},
	})
}

func (UserAttributeSimilarityValidator) HelpText() string {
	return "Sua senha não pode ser muito parecida com o resto das suas informações pessoais."
}

func (UserAttributeSimilarityValidator) HelpTextKey() string {
	return "validation.password_too_similar_help"
}

func similarAttribute(password string, user *PasswordUser) string {
	if user == nil || password == "" {
		return ""
	}

	pw := strings.ToLower(password)
	local, _, _ := strings.Cut(user.Email, "@")
	attrs := []struct{ name, value string }{
		{"username", user.Username},
		{"email", local},
		{"first_name", user.FirstName},
		{"last_name", user.LastName},
	}

	for _, a := range attrs {
		value := strings.ToLower(a.value)
		parts := strings.FieldsFunc(value, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		parts = append(parts, value)
		for _, part := range parts {
			if utf8.RuneCountInString(part) >= 3 && strings.Contains(pw, part) {
				return a.name
			}
		}
	}
	return ""
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// HelpTextValuer is implemented by validators whose help text carries
// placeholders.
type HelpTextValuer interface {
	HelpTextValues() map[string]any
}

// HelpTextValues returns the placeholder values for v's help text, or nil.
func HelpTextValues(v PasswordValidator) map[string]any {
	if hv, ok := v.(HelpTextValuer); ok {
		return hv.HelpTextValues()
	}
	return nil
}

// PasswordPolicy runs a list of password validators in order and reports
// every failure.
type PasswordPolicy struct {
	validators []PasswordValidator
}

func NewPasswordPolicy(validators ...PasswordValidator) *PasswordPolicy {
	return &PasswordPolicy{validators: validators}
}

// DefaultPasswordPolicy checks similarity to user attributes, a minimum
// length of 8, common passwords, all-numeric passwords and complexity.
func DefaultPasswordPolicy() *PasswordPolicy {
	return NewPasswordPolicy(
		UserAttributeSimilarityValidator{},
		MinimumLengthValidator{MinLength: DefaultPasswordMinLength},
		CommonPasswordValidator{},
		NumericPasswordValidator{},
		ComplexPasswordValidator{},
	)
}

// Validate returns nil or ValidationErrors holding every failure in
// validator order.
func (p *PasswordPolicy) Validate(password string, user *PasswordUser) error {
	var errs ValidationErrors
	for _, v := range p.validators {
		err := v.Validate(password, user)
		if err == nil {
			continue
		}
		if verrs := ExtractValidationErrors(err); verrs != nil {
			errs = append(errs, verrs...)
			continue
		}
		errs.Add(ValidationError{
			Field:          "password",
			Code:           "password_invalid",
			Message:        err.Error(),
			TranslationKey: "validation.password_invalid",
		})
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// HelpTexts returns the help text of every validator in order.
func (p *PasswordPolicy) HelpTexts() []string {
	texts := make([]string, 0, len(p.validators))
	for _, v := range p.validators {
		texts = append(texts, v.HelpText())
	}
	return texts
}

// Validators returns the configured validators.
func (p *PasswordPolicy) Validators() []PasswordValidator {
	return p.validators
}
