package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/armoredgo/armored/pkg/i18n"
)

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()

	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("pt-br", "en"))

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		expected string
	}{
		{
			name:     "cookie wins",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
				r.Header.Set("Accept-Language", "pt-BR")
			},
			expected: "en",
		},
		{
			name:     "unsupported cookie is skipped",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})
				r.Header.Set("Language", "pt_BR")
			},
			expected: "pt-br",
		},
		{
			name:     "query parameter",
			setup:    func(r *http.Request) { r.URL.RawQuery = "lang=EN-us" },
			expected: "en",
		},
		{
			name:     "language header",
			setup:    func(r *http.Request) { r.Header.Set("Language", "en") },
			expected: "en",
		},
		{
			name:     "accept-language",
			setup:    func(r *http.Request) { r.Header.Set("Accept-Language", "fr, pt;q=0.7") },
			expected: "pt-br",
		},
		{
			name:     "nothing",
			setup:    func(r *http.Request) {},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)
			assert.Equal(t, tt.expected, extract(r))
		})
	}
}

func TestDefaultLangExtractor_CustomNames(t *testing.T) {
	t.Parallel()

	extract := i18n.DefaultLangExtractor(
		i18n.WithCookieName("locale"),
		i18n.WithQueryParamName("hl"),
		i18n.WithHeaderName("X-Locale"),
	)

	r := httptest.NewRequest(http.MethodGet, "/?hl=de", nil)
	assert.Equal(t, "de", extract(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Locale", "es")
	assert.Equal(t, "es", extract(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "it-IT,it;q=0.9")
	assert.Equal(t, "it-it", extract(r), "without a supported list the preferred tag is returned")
}
