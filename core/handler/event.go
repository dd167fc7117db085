package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/keywork/core/execctx"
)

// Data is a request-scoped bag shared by every handler in one request chain.
// It is not safe for concurrent use; handlers run sequentially.
type Data map[string]any

// Event is the request context handed to handlers. Routers make a shallow
// copy at every delegation boundary: Request, Params and BasePath are scoped
// to the handler, while Env, Data and Exec are shared.
type Event[E any] struct {
	// Request is the incoming request. Its URL path is the part not yet
	// consumed by enclosing routers.
	Request *http.Request
	// OriginalURL is the URL as received by the outermost router.
	OriginalURL *url.URL
	// Params holds path params matched by the current route.
	Params map[string]string
	// BasePath is the prefix consumed by enclosing routers.
	BasePath string
	// Env holds application bindings passed through untouched.
	Env E
	// Data is shared, mutable request state.
	Data Data
	// Exec schedules background work that may outlive the response.
	Exec execctx.Context
}

// NewEvent creates the top-level event for a request.
func NewEvent[E any](req *http.Request, env E, exec execctx.Context) *Event[E] {
	original := *req.URL
	return &Event[E]{
		Request:     req,
		OriginalURL: &original,
		Env:         env,
		Data:        make(Data),
		Exec:        exec,
	}
}

// Derive returns a child event whose request path is pathname. The request is
// shallow cloned so the parent keeps its own URL.
func (ev *Event[E]) Derive(pathname, basePath string, params map[string]string) *Event[E] {
	child := *ev
	child.Params = params
	child.BasePath = basePath

	if ev.Request != nil && ev.Request.URL.Path != pathname {
		req := new(http.Request)
		*req = *ev.Request
		u := *ev.Request.URL
		u.Path = pathname
		u.RawPath = ""
		req.URL = &u
		child.Request = req
	}
	return &child
}

// Param returns a path param by key.
func (ev *Event[E]) Param(key string) string {
	return ev.Params[key]
}

// Context returns the request context.
func (ev *Event[E]) Context() context.Context {
	if ev.Request == nil {
		return context.Background()
	}
	return ev.Request.Context()
}

// Method returns the request method.
func (ev *Event[E]) Method() string {
	return ev.Request.Method
}

// Pathname returns the request path relative to the current router.
func (ev *Event[E]) Pathname() string {
	if p := ev.Request.URL.Path; p != "" {
		return p
	}
	return "/"
}

// Get returns a value from the shared request data.
func (ev *Event[E]) Get(key string) (any, bool) {
	v, ok := ev.Data[key]
	return v, ok
}

// Set stores a value in the shared request data.
func (ev *Event[E]) Set(key string, v any) {
	if ev.Data == nil {
		ev.Data = make(Data)
	}
	ev.Data[key] = v
}

// WaitUntil schedules background work on the execution context.
// Without one, the task runs detached.
func (ev *Event[E]) WaitUntil(task execctx.Task) {
	if ev.Exec == nil {
		execctx.Detached(nil).WaitUntil(task)
		return
	}
	ev.Exec.WaitUntil(task)
}

// Value returns a typed value from the shared request data.
func Value[T any, E any](ev *Event[E], key string) (T, bool) {
	v, ok := ev.Data[key].(T)
	return v, ok
}
