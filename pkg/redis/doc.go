// Package redis connects to Redis with bounded retries and exposes a
// readiness probe. Redis is optional for this service: when REDIS_URL is
// empty, Connect returns ErrNotConfigured and callers use in-memory
// fallbacks instead.
//
//	client, err := redis.Connect(ctx, cfg)
//	switch {
//	case errors.Is(err, redis.ErrNotConfigured):
//		// run without Redis
//	case err != nil:
//		return err
//	}
//	defer client.Close()
package redis
