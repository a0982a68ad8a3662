package sanitizer

import (
	"html"
	"strings"
)

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// RemoveControlSequences removes ANSI escape sequences and other control
// characters except tabs and line breaks.
func RemoveControlSequences(s string) string {
	return RemoveControlChars(ansiEscapeRegex.ReplaceAllString(s, ""))
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

// CleanText prepares free-form user text for storage: null bytes, control
// sequences and HTML tags are removed before the whitespace cleanup of
// SanitizeString.
func CleanText(s string, maxLength int) string {
	return SanitizeString(StripHTML(RemoveControlSequences(RemoveNullBytes(s))), maxLength)
}
