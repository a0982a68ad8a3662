package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// NormalizeEmail lower-cases and trims an address and consolidates consecutive
// dots in the local part. Values without exactly one @ are only trimmed and
// lower-cased.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail keeps the first character of the local part and the full domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	first, size := utf8.DecodeRuneInString(local)
	rest := utf8.RuneCountInString(local[size:])
	if rest == 0 {
		return "*@" + domain
	}
	return string(first) + strings.Repeat("*", rest) + "@" + domain
}

// MaskCPF hides the first three and the last two digits of a CPF, the
// usual way documents are shown in receipts: ***.444.777-**.
// Inputs that do not hold 11 digits are fully masked.
func MaskCPF(cpf string) string {
	digits := KeepDigits(cpf)
	if len(digits) != 11 {
		return strings.Repeat("*", len(digits))
	}
	return "***." + digits[3:6] + "." + digits[6:9] + "-**"
}

// MaskPhone shows only the last four digits.
func MaskPhone(phone string) string {
	digits := KeepDigits(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
