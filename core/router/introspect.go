package router

import (
	"net/http"

	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/response"
)

// IntrospectionPath serves the route tree when introspection is enabled.
const IntrospectionPath = "/keywork/routes"

// RouteInfo describes a registered route. Mounted routers list their own
// routes under Routes.
type RouteInfo struct {
	Verb    string      `json:"verb"`
	Pattern string      `json:"pattern"`
	Kind    string      `json:"kind"`
	Name    string      `json:"name"`
	Routes  []RouteInfo `json:"routes,omitempty"`
}

// RouteTree is the body of the introspection endpoint.
type RouteTree struct {
	Name   string      `json:"name"`
	Routes []RouteInfo `json:"routes"`
}

type routeLister interface {
	Routes() []RouteInfo
}

// Routes lists routes grouped by verb, ALL first, in registration order.
func (m *mux[E]) Routes() []RouteInfo {
	out := make([]RouteInfo, 0, m.table.len())
	for _, verb := range append([]Verb{ALL}, Verbs...) {
		for _, e := range m.table.buckets[verb] {
			info := RouteInfo{
				Verb:    string(verb),
				Pattern: e.pattern.Source(),
				Kind:    e.target.kind.String(),
				Name:    e.target.name,
			}
			if e.target.kind == TargetRouter {
				if rl, ok := e.target.composite.(routeLister); ok {
					info.Routes = rl.Routes()
				}
			}
			out = append(out, info)
		}
	}
	return out
}

func (m *mux[E]) introspect() *response.Response {
	return response.JSON(RouteTree{Name: m.name, Routes: m.Routes()})
}

func isIntrospection[E any](ev *handler.Event[E]) bool {
	return ev.Request != nil && ev.Method() == http.MethodGet && ev.Pathname() == IntrospectionPath
}
