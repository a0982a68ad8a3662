package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/armoredgo/armored/locales"
	"github.com/armoredgo/armored/pkg/clientip"
	"github.com/armoredgo/armored/pkg/environment"
	"github.com/armoredgo/armored/pkg/httpserver"
	"github.com/armoredgo/armored/pkg/i18n"
	"github.com/armoredgo/armored/pkg/logger"
	"github.com/armoredgo/armored/pkg/ratelimiter"
	"github.com/armoredgo/armored/pkg/requestid"
)

func (s *Service) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(
		requestid.Middleware,
		clientip.Middleware(s.cfg.TrustProxyHeaders),
		environment.Middleware(s.env),
		i18n.Middleware(
			i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(locales.Supported...)),
			s.tr.DefaultLanguage(),
		),
		s.logRequests,
		s.recoverPanics,
		ratelimiter.Middleware(s.limiter, clientip.KeyFunc(),
			ratelimiter.WithSkip(isHealthProbe),
			ratelimiter.WithErrorResponder(s.rateLimitResponder),
		),
	)

	r.NotFound(s.fail(ErrNotFound))
	r.MethodNotAllowed(s.fail(ErrMethodNotAllowed))

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(s.log, readinessTimeout, s.checks...))

	jsonBody := WithBinders(BindJSON(s.cfg.MaxBodyBytes))
	onError := WithErrorHandler(s.onError)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/cpf/validate", Wrap(s.validateCPF, jsonBody, onError))
		r.Post("/phone/validate", Wrap(s.validatePhone, jsonBody, onError))
		r.Post("/password/validate", Wrap(s.validatePassword, jsonBody, onError))
		r.Get("/password/help", Wrap(s.passwordHelp, WithBinders(bindPolicyQuery), onError))
		r.Post("/sanitize", Wrap(s.sanitize, jsonBody, onError))
		r.Post("/profiles/validate", Wrap(s.validateProfile, jsonBody, onError))
	})

	return r
}

func isHealthProbe(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/health/")
}

func (s *Service) fail(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.onError(w, r, err)
	}
}

func (s *Service) rateLimitResponder(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result, err error) {
	if err != nil {
		s.onError(w, r, fmt.Errorf("%w: %w", ErrServiceUnavailable, err))
		return
	}
	s.onError(w, r, ErrTooManyRequests)
}

// logRequests logs one record per request once the response is written.
func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.log.LogAttrs(r.Context(), slog.LevelInfo, "request completed",
			logger.HTTPRequest(r.Method, r.URL.Path, status),
			logger.Duration(time.Since(start)),
			slog.Int("bytes", ww.BytesWritten()),
			slog.String("client_ip", clientip.FromContext(r.Context())),
		)
	})
}

// recoverPanics turns a handler panic into a 500 envelope. http.ErrAbortHandler
// is re-raised so the server can abort the connection.
func (s *Service) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.onError(w, r, fmt.Errorf("%w: panic: %v", ErrInternal, rec))
		}()
		next.ServeHTTP(w, r)
	})
}
