package api

import (
	"github.com/armoredgo/armored/pkg/environment"
	"github.com/armoredgo/armored/pkg/httpserver"
	"github.com/armoredgo/armored/pkg/ratelimiter"
	"github.com/armoredgo/armored/pkg/redis"
)

// Config is the service configuration, loaded from the environment with
// config.Load.
type Config struct {
	ServiceName       string `env:"APP_NAME" envDefault:"armored"`          // Service name attached to log records
	Env               string `env:"APP_ENV" envDefault:"development"`       // development, staging, production or test
	TestMode          bool   `env:"APP_TEST_MODE" envDefault:"false"`       // Set by test harnesses: in-memory limiter, silent logs
	LogLevel          string `env:"LOG_LEVEL"`                              // Overrides the environment's default level
	TrustProxyHeaders bool   `env:"TRUST_PROXY_HEADERS" envDefault:"false"` // Read the client IP from proxy headers
	MaxBodyBytes      int64  `env:"MAX_BODY_BYTES" envDefault:"65536"`      // Upper bound for JSON request bodies

	HTTP      httpserver.Config
	Redis     redis.Config
	RateLimit ratelimiter.Config `envPrefix:"RATE_LIMIT_"`
}

// Environment returns the parsed APP_ENV value. TestMode forces Test.
func (c Config) Environment() environment.Environment {
	if c.TestMode {
		return environment.Test
	}
	return environment.Parse(c.Env)
}
