// Package router matches HTTP requests against registered patterns and runs
// the matching handlers as a cooperative chain.
//
// Routes are tried in a fixed order: routes registered for ALL first, then
// routes for the request's verb, each group in registration order. A handler
// receives the request event and a next function. It answers by returning a
// response-like value (see response.Coerce), delegates by returning next(),
// or declines by returning nil, which moves on to the next matching route.
// When nothing answers the router responds 404.
//
// # Basic Usage
//
//	type Env struct {
//		DB *sql.DB
//	}
//
//	r := router.New[Env](router.WithLogger[Env](log))
//
//	r.Get("/", func(ev *handler.Event[Env], next handler.Next) any {
//		return "Hello from /"
//	})
//
//	r.Get("/json/:firstName/:lastName", func(ev *handler.Event[Env], next handler.Next) any {
//		return map[string]string{
//			"firstName": ev.Param("firstName"),
//			"lastName":  ev.Param("lastName"),
//		}
//	})
//
//	http.ListenAndServe(":8080", r)
//
// # Middleware
//
// Middleware is a handler registered with Use or UseAt. It matches every
// verb and every path under its prefix, and wraps later routes by calling next:
//
//	r.Use(func(ev *handler.Event[Env], next handler.Next) any {
//		resp := next()
//		return response.WithHeaders(resp, map[string]string{"X-Frame-Options": "DENY"})
//	})
//
// Calling next more than once is safe: the rest of the chain runs once and
// every call returns the same response.
//
// # Mounting
//
// Routers nest. A mounted router sees the path with the mount prefix removed
// and falls through to its parent's remaining routes when nothing inside it
// answers:
//
//	api := router.New[Env]()
//	api.Get("/users", listUsers) // serves /api/users
//	r.Mount("/api", api)
//
// # Errors
//
// Registration mistakes (bad patterns, nil handlers) panic at startup.
// Handler panics, returned errors and results that cannot be converted into a
// response are caught at the router level that invoked the handler, logged,
// and answered with a JSON error body:
//
//	{"status": "Internal Server Error", "statusCode": 500}
//
// Errors that implement StatusCode() int keep their status, see the response
// package.
//
// # Runtimes
//
// Besides ServeHTTP, Fetch accepts the request, the environment bindings and
// an execution context separately, matching the fetch handlers of edge
// runtimes. Handlers schedule post-response work through ev.WaitUntil.
package router
