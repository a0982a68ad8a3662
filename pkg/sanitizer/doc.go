// Package sanitizer cleans free-form user input before it is validated or
// stored.
//
// The central helper is SanitizeString, which collapses whitespace runs
// (tabs and line breaks included), trims the result and optionally cuts it
// to a maximum number of characters:
//
//	sanitizer.SanitizeString("  Hello\t\nWorld\n\n", 0)  // "Hello World"
//	sanitizer.SanitizeString("This is a long text", 10) // "This is a "
//
// SanitizeStringPtr accepts optional values and maps nil to "".
//
// The remaining helpers cover normalisation (NormalizeEmail, KeepDigits,
// RemoveExtraWhitespace), masking of personal data before it is logged or echoed
// (MaskEmail, MaskCPF, MaskPhone) and removal of unsafe content
// (StripHTML, RemoveControlSequences, CleanText). Apply and Compose chain
// any of them into pipelines:
//
//	clean := sanitizer.Compose(sanitizer.StripHTML, sanitizer.Limit(120))
//	name := clean(input)
//
// None of the helpers returns an error and all of them are safe for
// concurrent use.
package sanitizer
