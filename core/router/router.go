package router

import (
	"net/http"

	"github.com/dmitrymomot/keywork/core/execctx"
	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/response"
)

// Router matches requests against registered patterns and drives the
// handler chain. A Router is itself a composite handler, so it can be
// mounted inside another Router.
//
// Registration must happen before serving; the route table is read without
// locks.
type Router[E any] interface {
	http.Handler
	handler.Composite[E]

	// Register adds one route per target under verb. The pattern may be a
	// string, a *pattern.Pattern or a *regexp.Regexp. Handler targets match
	// the whole path; router targets match it as a prefix.
	Register(verb Verb, pattern any, targets ...Target[E])

	Get(pattern any, handlers ...handler.HandlerFunc[E])
	Post(pattern any, handlers ...handler.HandlerFunc[E])
	Put(pattern any, handlers ...handler.HandlerFunc[E])
	Patch(pattern any, handlers ...handler.HandlerFunc[E])
	Delete(pattern any, handlers ...handler.HandlerFunc[E])
	Head(pattern any, handlers ...handler.HandlerFunc[E])
	Options(pattern any, handlers ...handler.HandlerFunc[E])
	All(pattern any, handlers ...handler.HandlerFunc[E])

	// Use registers middleware for every verb and path.
	Use(handlers ...handler.HandlerFunc[E])
	// UseAt registers middleware for every verb on paths under pattern.
	UseAt(pattern any, handlers ...handler.HandlerFunc[E])
	// Mount attaches composites for every verb on paths under pattern. They
	// see the request path with the pattern prefix removed.
	Mount(pattern any, subs ...handler.Composite[E])

	// Fetch dispatches a request as the outermost router and always returns
	// a response. A nil exec runs background tasks detached.
	Fetch(req *http.Request, env E, exec execctx.Context) *response.Response
	// FetchEvent is Fetch for an already built event.
	FetchEvent(ev *handler.Event[E]) *response.Response

	// Routes describes the route table, including mounted routers.
	Routes() []RouteInfo
	// DisplayName is the router name shown in logs and introspection.
	DisplayName() string
	// Dispose drops every registered route. Mounted routers are not touched.
	Dispose()
}

// New creates a router with the given options.
func New[E any](opts ...Option[E]) Router[E] {
	return newMux(opts...)
}
