package clientip

import "net/http"

// Middleware resolves the client IP once per request and stores it in the
// context. With trustProxyHeaders false only RemoteAddr is used.
func Middleware(trustProxyHeaders bool) func(http.Handler) http.Handler {
	resolve := RemoteIP
	if trustProxyHeaders {
		resolve = GetIP
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// KeyFunc returns a rate limit key function that uses the IP stored by
// Middleware and falls back to RemoteIP.
func KeyFunc() func(r *http.Request) string {
	return func(r *http.Request) string {
		if ip := FromContext(r.Context()); ip != "" {
			return ip
		}
		return RemoteIP(r)
	}
}
