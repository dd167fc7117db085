package router

import (
	"log/slog"

	"github.com/dmitrymomot/keywork/core/response"
)

// PoweredBy is the default value of the X-Powered-By header.
const PoweredBy = "Keywork"

// Option configures a Router during creation.
type Option[E any] func(*mux[E])

// WithLogger sets a custom logger for the router.
func WithLogger[E any](logger *slog.Logger) Option[E] {
	return func(m *mux[E]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDisplayName sets the name shown in logs and route introspection.
func WithDisplayName[E any](name string) Option[E] {
	return func(m *mux[E]) {
		if name != "" {
			m.name = name
		}
	}
}

// WithPoweredBy sets the X-Powered-By header added to top-level responses.
// An empty value disables the header.
func WithPoweredBy[E any](value string) Option[E] {
	return func(m *mux[E]) {
		m.poweredBy = value
	}
}

// WithIntrospection enables GET /keywork/routes on the top-level router.
func WithIntrospection[E any](enabled bool) Option[E] {
	return func(m *mux[E]) {
		m.introspection = enabled
	}
}

// WithRenderOptions sets how coerced handler results are rendered.
func WithRenderOptions[E any](opts response.RenderOptions) Option[E] {
	return func(m *mux[E]) {
		m.render = opts
	}
}

// WithCaseInsensitive makes string patterns registered afterwards ignore
// letter case.
func WithCaseInsensitive[E any]() Option[E] {
	return func(m *mux[E]) {
		m.caseInsensitive = true
	}
}

// WithEnv sets the bindings ServeHTTP passes to handlers. Fetch callers pass
// their own.
func WithEnv[E any](env E) Option[E] {
	return func(m *mux[E]) {
		m.env = env
	}
}

// WithBackgroundLimit bounds the number of WaitUntil tasks running at once
// for a request served through ServeHTTP. Zero means no limit.
func WithBackgroundLimit[E any](n int) Option[E] {
	return func(m *mux[E]) {
		if n >= 0 {
			m.backgroundLimit = n
		}
	}
}
