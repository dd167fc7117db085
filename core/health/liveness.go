package health

import (
	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/response"
)

// Liveness reports that the process is running. It never checks dependencies.
func Liveness[E any](*handler.Event[E], handler.Next) any {
	return response.String("ALIVE")
}

// NoContent answers 204 without a body.
func NoContent[E any](*handler.Event[E], handler.Next) any {
	return response.NoContent()
}
