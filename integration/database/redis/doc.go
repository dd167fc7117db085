// Package redis connects to Redis with retries and exposes a health check.
// The session middleware uses the returned client as its shared store.
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//		RetryAttempts: 3,
//		RetryInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := middleware.NewRedisSessionStore(client)
package redis
