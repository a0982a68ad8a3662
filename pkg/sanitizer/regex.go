package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Consecutive dots in e-mail local parts
	dotRegex = regexp.MustCompile(`\.+`)

	// Document and phone digit extraction
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)

	// ANSI escape sequences
	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
)
