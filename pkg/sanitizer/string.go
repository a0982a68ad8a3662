package sanitizer

import (
	"strings"
	"unicode"
)

// SanitizeString collapses every run of whitespace (spaces, tabs, line
// breaks, Unicode spaces) into a single space, trims both ends and, when
// maxLength is positive, truncates the result to maxLength characters.
// Truncation happens last, so a space exposed by the cut is kept.
func SanitizeString(text string, maxLength int) string {
	if text == "" {
		return ""
	}

	text = RemoveExtraWhitespace(text)
	if maxLength > 0 {
		text = MaxLength(text, maxLength)
	}
	return text
}

// SanitizeStringPtr is SanitizeString for optional values; nil yields "".
func SanitizeStringPtr(text *string, maxLength int) string {
	if text == nil {
		return ""
	}
	return SanitizeString(*text, maxLength)
}

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength truncates a string to at most maxLen characters.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveExtraWhitespace replaces runs of whitespace with a single space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// isSpace extends unicode.IsSpace with the information separators
// U+001C..U+001F, which are treated as line breaks in text data.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// KeepDigits keeps only ASCII digits.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// RemoveControlChars removes control characters, keeping tabs and line breaks.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}
