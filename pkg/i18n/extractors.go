package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangExtractor extracts a language code from an HTTP request. An empty
// result lets the middleware apply its default.
type LangExtractor func(r *http.Request) string

// maxLangCodeLength is the maximum accepted length of a language code (RFC 5646).
const maxLangCodeLength = 35

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	HeaderName     string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithHeaderName sets the custom header checked before Accept-Language.
func WithHeaderName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.HeaderName = name
		}
	}
}

// WithSupportedLanguages restricts extracted values to the given languages.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order: the "lang" cookie, the "lang"
// query parameter, the "Language" header and Accept-Language. Explicit
// values that are not supported are skipped so the next source can match.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
		HeaderName:     "Language",
	}
	for _, opt := range opts {
		opt(config)
	}

	supported := make([]string, len(config.SupportedLangs))
	for i, l := range config.SupportedLangs {
		supported[i] = NormalizeLanguage(l)
	}

	validate := func(lang string) string {
		lang = strings.TrimSpace(lang)
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		lang = NormalizeLanguage(lang)
		if len(supported) == 0 || slices.Contains(supported, lang) {
			return lang
		}
		if base := baseLanguage(lang); slices.Contains(supported, base) {
			return base
		}
		return ""
	}

	return func(r *http.Request) string {
		if cookie, err := r.Cookie(config.CookieName); err == nil {
			if lang := validate(cookie.Value); lang != "" {
				return lang
			}
		}

		if lang := validate(r.URL.Query().Get(config.QueryParamName)); lang != "" {
			return lang
		}

		if lang := validate(r.Header.Get(config.HeaderName)); lang != "" {
			return lang
		}

		if accept := r.Header.Get("Accept-Language"); accept != "" {
			if len(supported) > 0 {
				return ParseAcceptLanguage(accept, supported, "")
			}
			return PreferredLanguage(accept)
		}

		return ""
	}
}
