package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none is detected.
const DefaultLanguage = "pt-br"

// maxAcceptLanguageLength bounds the Accept-Language header we are willing to parse.
const maxAcceptLanguageLength = 4096

// NormalizeLanguage canonicalizes a BCP 47 tag and lower-cases it:
// "pt_BR", "PT-br" and "pt-BR" all become "pt-br". Values that do not parse
// as a tag are only trimmed and lower-cased.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
	}
	return strings.ToLower(tag.String())
}

// baseLanguage returns the primary subtag, e.g. "pt" for "pt-br".
func baseLanguage(lang string) string {
	base, _, _ := strings.Cut(lang, "-")
	return base
}

// PreferredLanguage returns the highest-quality language of an
// Accept-Language header, normalized, or "" when the header is empty or malformed.
func PreferredLanguage(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return strings.ToLower(tags[0].String())
}

// ParseAcceptLanguage picks the best supported language for an
// Accept-Language header. Exact matches win over base-language matches
// ("pt-PT" falls back to a supported "pt"), and a header asking for a base
// language ("pt") matches the first supported regional variant ("pt-br").
// defaultLang is returned when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, l := range supportedLangs {
		supported[i] = NormalizeLanguage(l)
	}

	requested := make([]string, 0, len(tags))
	for _, tag := range tags {
		requested = append(requested, strings.ToLower(tag.String()))
	}

	// Tags come back sorted by quality, so the first hit in each phase wins.
	for _, lang := range requested {
		if slices.Contains(supported, lang) {
			return lang
		}
	}
	for _, lang := range requested {
		base := baseLanguage(lang)
		if slices.Contains(supported, base) {
			return base
		}
		for _, s := range supported {
			if baseLanguage(s) == base {
				return s
			}
		}
	}

	return defaultLang
}
