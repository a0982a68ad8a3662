package validator

import (
	"errors"
	"strings"
)

const (
	cpfLength     = 11
	cpfBaseLength = 9

	CodeCPFInvalidLength = "cpf_invalid_length"
	CodeCPFInvalid       = "cpf_invalid"
)

// ValidateCPF validates a Brazilian CPF and returns its 11 digits.
// Punctuation is ignored, so "111.444.777-35" and "11144477735" are equivalent.
//
// Failures are *ValueError values wrapping ErrInvalidLength when the digit
// count is not 11, or ErrInvalidValue for repeated-digit numbers and check
// digit mismatches.
func ValidateCPF(cpf string) (string, error) {
	digits := onlyDigits(cpf)

	if len(digits) != cpfLength {
		return "", newLengthError(CodeCPFInvalidLength, "CPF deve conter 11 dígitos.", "validation.cpf_length")
	}

	if strings.Count(digits, digits[:1]) == cpfLength {
		return "", newInvalidValueError(CodeCPFInvalid, "CPF inválido.", "validation.cpf_invalid")
	}

	first := cpfCheckDigit(digits[:cpfBaseLength])
	second := cpfCheckDigit(digits[:cpfBaseLength+1])
	if first != digitAt(digits, 9) || second != digitAt(digits, 10) {
		return "", newInvalidValueError(CodeCPFInvalid, "CPF inválido.", "validation.cpf_invalid")
	}

	return digits, nil
}

// FormatCPF validates the CPF and renders it as XXX.XXX.XXX-XX.
func FormatCPF(cpf string) (string, error) {
	digits, err := ValidateCPF(cpf)
	if err != nil {
		return "", err
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:], nil
}

// CPFCheckDigits computes both check digits for a 9-digit CPF base.
// Punctuation in base is ignored.
func CPFCheckDigits(base string) (int, int, error) {
	digits := onlyDigits(base)
	if len(digits) != cpfBaseLength {
		return 0, 0, errors.Join(ErrInvalidLength, errors.New("cpf base must contain 9 digits"))
	}

	first := cpfCheckDigit(digits)
	second := cpfCheckDigit(digits + string(rune('0'+first)))
	return first, second, nil
}

// ValidCPF validates that value is a valid CPF, formatted or not.
func ValidCPF(field, value string) Rule {
	rule := Rule{
		Error: ValidationError{
			Field:          field,
			Code:           CodeCPFInvalid,
			Message:        "CPF inválido.",
			TranslationKey: "validation.cpf_invalid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}

	_, err := ValidateCPF(value)
	var verr *ValueError
	if errors.As(err, &verr) {
		rule.Error = verr.ToValidationError(field)
	}
	rule.Check = func() bool { return err == nil }
	return rule
}

// cpfCheckDigit weighs digits from the right starting at 2, multiplies the
// sum by 10 and reduces it mod 11; a remainder of 10 maps to 0.
func cpfCheckDigit(digits string) int {
	sum := 0
	for k := range len(digits) {
		sum += digitAt(digits, len(digits)-1-k) * (k + 2)
	}

	d := sum * 10 % 11
	if d == 10 {
		return 0
	}
	return d
}

func digitAt(digits string, i int) int {
	return int(digits[i] - '0')
}

// onlyDigits drops everything but ASCII digits.
func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
