// Package redis connects to the optional Redis server used to share rate
// limit buckets between service replicas.
//
// Config is populated from REDIS_* environment variables. An empty REDIS_URL
// disables Redis; Connect then returns ErrEmptyConnectionURL and callers keep
// the in-memory limiter store.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    if err != nil {
//	        return err
//	    }
//	    defer client.Close()
//	    ready = append(ready, redis.Healthcheck(client))
//	}
//
// Errors are sentinel values joined with the go-redis error, so both can be
// matched with errors.Is.
package redis
