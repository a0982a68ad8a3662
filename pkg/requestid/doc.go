// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when it is 1 to 128
// characters of letters, digits, '-' and '_'; otherwise it generates a
// time-ordered UUIDv7. The id is stored in the request context and echoed in
// the response header. Malformed client ids are replaced, never rejected.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	log.InfoContext(r.Context(), "handled") // includes request_id
package requestid
