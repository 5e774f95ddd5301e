// Package redis creates go-redis clients with connection verification for
// the Redis backed line store (integration/asset/redisasset).
//
// Connect parses a redis:// or rediss:// URL, then pings the server with
// exponential backoff until it answers or ConnectTimeout expires:
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  time.Second,
//		ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Pass WithLogger to Connect to log failed attempts and the final outcome.
//
// Config carries env tags (REDIS_URL, REDIS_RETRY_ATTEMPTS,
// REDIS_RETRY_INTERVAL, REDIS_CONNECT_TIMEOUT, REDIS_SCAN_BATCH_SIZE) for
// use with core/config; LoadConfig reads them.
//
// Healthcheck returns a ping function for readiness checks.
//
// Errors can be checked with errors.Is: ErrEmptyConnectionURL,
// ErrFailedToParseRedisConnString, ErrRedisNotReady and ErrHealthcheckFailed.
package redis
