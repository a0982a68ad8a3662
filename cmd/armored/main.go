// Command armored serves the validation API.
//
// Configuration is read from the environment and an optional .env file; see
// api.Config for the variables. When REDIS_URL is set the rate limiter keeps
// its buckets in Redis and /health/ready pings the server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/armoredgo/armored/api"
	"github.com/armoredgo/armored/pkg/config"
	"github.com/armoredgo/armored/pkg/httpserver"
	"github.com/armoredgo/armored/pkg/logger"
	"github.com/armoredgo/armored/pkg/ratelimiter"
	"github.com/armoredgo/armored/pkg/redis"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("armored stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg api.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := api.NewLogger(cfg)
	logger.SetAsDefault(log)

	opts := []api.Option{api.WithLogger(log)}

	if cfg.Redis.Enabled() && !cfg.TestMode {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		store, err := ratelimiter.NewRedisStore(client)
		if err != nil {
			return err
		}
		opts = append(opts,
			api.WithLimiterStore(store),
			api.WithReadinessCheck("redis", redis.Healthcheck(client)),
		)
		log.Info("rate limiter uses redis")
	}

	svc, err := api.New(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer svc.Close()

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, svc.Handler())
}
