// Package middleware provides request handlers for cross-cutting concerns:
// request IDs, access logging and browser sessions.
//
// Middleware in keywork is an ordinary handler.HandlerFunc that calls next
// and returns (or decorates) the downstream response. Registering one with
// Router.Use makes it run before every route of that router:
//
//	r := router.New[Env]()
//	r.Use(
//		middleware.RequestID[Env](),
//		middleware.Logging[Env](log),
//		middleware.Sessions[Env](middleware.NewRedisSessionStore(client)),
//	)
//
// Every middleware has a default constructor and a WithConfig variant. Values
// produced by a middleware live in the shared event data and are read back
// with the Get helpers:
//
//	id, _ := middleware.GetRequestID(ev)
//	sess, _ := middleware.GetSession(ev)
//
// Headers and cookies are added to a copy of the downstream response, so a
// middleware never mutates a response another handler may still hold.
//
// # Sessions
//
// Sessions issues an opaque UUID cookie and tracks it in a SessionStore.
// MemorySessionStore suits tests and single instances; RedisSessionStore
// shares sessions across instances using go-redis. Store failures are logged
// and the request proceeds with a fresh session.
package middleware
