package middleware

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/response"
)

// RequestIDKey is the event data key holding the request ID.
const RequestIDKey = "keywork.request_id"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting reuses an ID sent by the client or an upstream proxy.
	UseExisting bool
}

// RequestID assigns a UUID to every request, stores it in the event data and
// echoes it in the response headers.
func RequestID[E any]() handler.HandlerFunc[E] {
	return RequestIDWithConfig[E](RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom configuration.
func RequestIDWithConfig[E any](cfg RequestIDConfig) handler.HandlerFunc[E] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ev *handler.Event[E], next handler.Next) any {
		var id string
		if cfg.UseExisting {
			id = ev.Request.Header.Get(cfg.HeaderName)
		}
		if id == "" {
			id = cfg.Generator()
		}

		ev.Set(RequestIDKey, id)

		return response.WithHeaders(next(), map[string]string{cfg.HeaderName: id})
	}
}

// GetRequestID returns the request ID stored by the middleware.
func GetRequestID[E any](ev *handler.Event[E]) (string, bool) {
	return handler.Value[string](ev, RequestIDKey)
}
