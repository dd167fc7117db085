// Package handler defines the contracts between the router and request
// handlers: the per-request Event, the Next continuation and the Composite
// capability that lets routers nest.
//
// A handler receives the event and a continuation. Middleware is an ordinary
// handler that calls next and decorates the result:
//
//	func timing[E any](ev *handler.Event[E], next handler.Next) any {
//		start := time.Now()
//		resp := next()
//		return response.WithHeaders(resp, map[string]string{
//			"Server-Timing": fmt.Sprintf("app;dur=%d", time.Since(start).Milliseconds()),
//		})
//	}
//
// Handlers return any value response.Coerce understands. Returning nil, or
// response.Continue(), passes the request to the next matching route.
//
// # Event Scoping
//
// Each delegation boundary receives a shallow copy of the event. The request
// path, params and base path belong to the copy; Env, Data and Exec are
// shared by the whole chain:
//
//	func auth(ev *handler.Event[Env], next handler.Next) any {
//		ev.Set("user", user)
//		return next()
//	}
//
//	func profile(ev *handler.Event[Env], next handler.Next) any {
//		u, _ := handler.Value[*User](ev, "user")
//		return u
//	}
package handler
