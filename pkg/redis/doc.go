// Package redis connects to Redis through go-redis v9 for the Redis-backed
// rate limit store.
//
// Connect retries the initial ping according to Config, whose fields are
// populated from REDIS_* environment variables. Healthcheck turns any
// redis.UniversalClient into a readiness check.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//	store := ratelimit.NewRedisStore(client)
package redis
