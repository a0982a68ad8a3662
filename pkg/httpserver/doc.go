// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts and health probe handlers.
//
// Server is built with New or NewFromConfig and Option helpers such as
// WithAddr, WithReadTimeout and WithLogger. Run binds the listener, runs the
// start hooks and serves until the context is cancelled, SIGINT/SIGTERM
// arrives or Shutdown is called; shutdown is bounded by the shutdown timeout
// and followed by the stop hooks.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler answer JSON probes. Readiness runs
// each named Check (for example redis.Healthcheck) with a timeout and
// reports 503 when any of them fails.
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown errors
// with ErrShutdown.
package httpserver
