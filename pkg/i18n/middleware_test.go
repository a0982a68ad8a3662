package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/armoredgo/armored/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))

	ctx := i18n.SetLocale(context.Background(), "en")
	ctx = i18n.SetLocale(ctx, "pt_BR")
	assert.Equal(t, "pt-br", i18n.GetLocale(ctx))

	attr, ok := i18n.LoggerExtractor()(ctx)
	assert.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "pt-br", attr.Value.String())

	_, ok = i18n.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = i18n.GetLocale(r.Context())
	})

	t.Run("uses extracted language", func(t *testing.T) {
		mw := i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("pt-br", "en")), "")
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "en-US")
		w := httptest.NewRecorder()

		mw(handler).ServeHTTP(w, r)
		assert.Equal(t, "en", seen)
		assert.Equal(t, "en", w.Header().Get("Content-Language"))
	})

	t.Run("falls back to configured default", func(t *testing.T) {
		mw := i18n.Middleware(func(*http.Request) string { return "" }, "en")
		w := httptest.NewRecorder()

		mw(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "en", seen)
	})

	t.Run("nil extractor and empty default", func(t *testing.T) {
		mw := i18n.Middleware(nil, "")
		w := httptest.NewRecorder()

		mw(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, i18n.DefaultLanguage, seen)
	})
}
