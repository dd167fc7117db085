package handler

import (
	"github.com/dmitrymomot/keywork/core/response"
)

// Next continues the chain with the next matching route. Calling it more than
// once returns the same response without dispatching anything again.
type Next func() *response.Response

// HandlerFunc handles a request. It may return any response-like value
// (see response.Coerce) or the result of next to delegate.
// Returning nil declines the request and the router tries the next route.
type HandlerFunc[E any] func(ev *Event[E], next Next) any

// Composite is a request handler that dispatches to handlers of its own,
// typically a router mounted under another router.
type Composite[E any] interface {
	Dispatch(ev *Event[E], next Next) *response.Response
	// IsRequestHandlerComposite marks the type as composite. It always returns true.
	IsRequestHandlerComposite() bool
}

// IsComposite reports whether v can be mounted as a composite handler.
func IsComposite[E any](v any) bool {
	c, ok := v.(Composite[E])
	return ok && c != nil && c.IsRequestHandlerComposite()
}
