package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/armoredgo/armored/locales"
	"github.com/armoredgo/armored/pkg/environment"
	"github.com/armoredgo/armored/pkg/httpserver"
	"github.com/armoredgo/armored/pkg/i18n"
	"github.com/armoredgo/armored/pkg/logger"
	"github.com/armoredgo/armored/pkg/ratelimiter"
	"github.com/armoredgo/armored/pkg/requestid"
	"github.com/armoredgo/armored/pkg/validator"
)

const readinessTimeout = 2 * time.Second

// Service is the validation HTTP API.
type Service struct {
	cfg     Config
	env     environment.Environment
	log     *slog.Logger
	tr      *i18n.Translator
	limiter *ratelimiter.TokenBucket
	checks  []httpserver.Check
	policy  *validator.PasswordPolicy
	structs *validator.StructValidator
	onError ErrorHandler
	handler http.Handler

	store     ratelimiter.Store
	ownStore  bool
	closeOnce sync.Once
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. It takes precedence over TestMode.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTranslator replaces the embedded translations.
func WithTranslator(tr *i18n.Translator) Option {
	return func(s *Service) {
		if tr != nil {
			s.tr = tr
		}
	}
}

// WithLimiterStore sets the rate limiter storage, such as a RedisStore.
// The caller keeps ownership of the store.
func WithLimiterStore(store ratelimiter.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithReadinessCheck registers a dependency probed by /health/ready.
func WithReadinessCheck(name string, check func(context.Context) error) Option {
	return func(s *Service) {
		if check != nil {
			s.checks = append(s.checks, httpserver.Check{Name: name, Check: check})
		}
	}
}

// WithPasswordPolicy replaces DefaultPasswordPolicy for the "default" policy.
func WithPasswordPolicy(p *validator.PasswordPolicy) Option {
	return func(s *Service) {
		if p != nil {
			s.policy = p
		}
	}
}

// New builds the service. Without WithLimiterStore the limiter keeps its
// buckets in memory; in TestMode logs are discarded unless WithLogger is
// given.
func New(ctx context.Context, cfg Config, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:     cfg,
		env:     cfg.Environment(),
		policy:  validator.DefaultPasswordPolicy(),
		structs: validator.NewStructValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = NewLogger(cfg)
	}

	if s.tr == nil {
		tr, err := locales.NewTranslator(ctx, i18n.WithLogger(s.log))
		if err != nil {
			return nil, fmt.Errorf("load translations: %w", err)
		}
		s.tr = tr
	}

	if s.store == nil {
		s.store = ratelimiter.NewMemoryStore()
		s.ownStore = true
	}
	limiter, err := ratelimiter.NewTokenBucket(s.store, cfg.RateLimit)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	s.limiter = limiter

	s.onError = NewErrorHandler(s.tr, s.log)
	s.handler = s.routes()

	return s, nil
}

// NewLogger builds the service logger for cfg: environment defaults, the
// LOG_LEVEL override and request id, locale and environment attributes taken
// from the request context. TestMode yields a discarding logger.
func NewLogger(cfg Config) *slog.Logger {
	if cfg.TestMode {
		return logger.Discard()
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Environment(), cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor(), environment.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

// Handler returns the root HTTP handler.
func (s *Service) Handler() http.Handler {
	return s.handler
}

// Logger returns the service logger.
func (s *Service) Logger() *slog.Logger {
	return s.log
}

// Close releases resources owned by the service.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		if ms, ok := s.store.(*ratelimiter.MemoryStore); ok && s.ownStore {
			ms.Close()
		}
	})
}
