// Package clientip resolves the originating client's IP address of an
// *http.Request. The address keys the per-client rate limiter.
//
// RemoteIP uses only the TCP peer address. GetIP first consults the headers
// listed in ProxyHeaders (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) and
// should only be used behind a proxy that sets them. Middleware resolves the
// address once per request using either function and stores it in the
// context; KeyFunc reads it back for ratelimiter.Middleware.
//
//	r.Use(clientip.Middleware(cfg.TrustProxyHeaders))
//	r.Use(ratelimiter.Middleware(limiter, clientip.KeyFunc()))
//
// Invalid addresses resolve to "". Nothing in this package returns an error.
package clientip
