package router

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/dmitrymomot/keywork/core/handler"
)

// TargetKind tells handler targets from nested routers.
type TargetKind uint8

const (
	// TargetHandler is a terminal handler function.
	TargetHandler TargetKind = iota + 1
	// TargetRouter is a composite handler, usually a mounted router.
	TargetRouter
)

// String implements fmt.Stringer.
func (k TargetKind) String() string {
	switch k {
	case TargetHandler:
		return "handler"
	case TargetRouter:
		return "router"
	}
	return "unknown"
}

// Target is what a route dispatches to: either a handler or a composite.
// Build one with Handle or Delegate.
type Target[E any] struct {
	kind      TargetKind
	handler   handler.HandlerFunc[E]
	composite handler.Composite[E]
	name      string
}

// Handle wraps a handler function as a route target.
func Handle[E any](h handler.HandlerFunc[E]) Target[E] {
	return Target[E]{kind: TargetHandler, handler: h, name: funcName(h)}
}

// Delegate wraps a composite, typically another router, as a route target.
func Delegate[E any](c handler.Composite[E]) Target[E] {
	return Target[E]{kind: TargetRouter, composite: c, name: compositeName(c)}
}

// Named returns a copy of the target with a custom display name.
func (t Target[E]) Named(name string) Target[E] {
	t.name = name
	return t
}

// Kind reports the target kind.
func (t Target[E]) Kind() TargetKind {
	return t.kind
}

// Name returns the display name used in logs and route introspection.
func (t Target[E]) Name() string {
	return t.name
}

func (t Target[E]) validate() error {
	switch t.kind {
	case TargetHandler:
		if t.handler == nil {
			return ErrNilHandler
		}
	case TargetRouter:
		if t.composite == nil || !t.composite.IsRequestHandlerComposite() {
			return ErrNilRouter
		}
	default:
		return ErrInvalidTarget
	}
	return nil
}

type displayNamer interface {
	DisplayName() string
}

func compositeName(c any) string {
	if c == nil {
		return ""
	}
	if dn, ok := c.(displayNamer); ok {
		return dn.DisplayName()
	}
	return fmt.Sprintf("%T", c)
}

// funcName returns the short name of a function, e.g. "main.listUsers".
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
