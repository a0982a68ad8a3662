package i18n

import "net/http"

// Middleware determines the request language with extr (DefaultLangExtractor
// when nil) and stores it in the request context. When nothing is detected
// defaultLang is used, or DefaultLanguage if defaultLang is empty.
// It also sets the Content-Language response header.
func Middleware(extr LangExtractor, defaultLang string) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = defaultLang
			}

			ctx := SetLocale(r.Context(), lang)
			w.Header().Set("Content-Language", GetLocale(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
