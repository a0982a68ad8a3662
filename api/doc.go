// Package api exposes the validators and the sanitizer over HTTP.
//
// Every endpoint accepts and returns JSON wrapped in a common envelope:
//
//	{"data": {...}}
//	{"error": {"code": "validation_failed", "message": "...", "details": {"cpf": [{"code": "cpf_invalid", "message": "CPF inválido."}]}}}
//
// Error and validation messages are translated into the request language,
// resolved from the lang cookie, the lang query parameter, the Language
// header or Accept-Language. Portuguese is the default.
//
// Routes:
//
//	POST /v1/cpf/validate        {"value": "111.444.777-35"}
//	POST /v1/phone/validate      {"value": "(11) 99988-7766"}
//	POST /v1/password/validate   {"password": "...", "username": "...", "policy": "default"}
//	GET  /v1/password/help       ?policy=default|complex
//	POST /v1/sanitize            {"text": "  Hello   World  ", "max_length": 0, "strip_markup": false}
//	POST /v1/profiles/validate   profile fields, returns the normalized profile
//	GET  /health/live
//	GET  /health/ready
//
// Requests are limited per client IP with a token bucket. The bucket store
// is in memory unless a shared store such as ratelimiter.RedisStore is
// passed with WithLimiterStore.
//
// Typical wiring:
//
//	var cfg api.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	svc, err := api.New(ctx, cfg, api.WithLogger(log))
//	defer svc.Close()
//	err = httpserver.NewFromConfig(cfg.HTTP).Run(ctx, svc.Handler())
package api
