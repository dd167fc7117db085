package router

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/logger"
	"github.com/dmitrymomot/keywork/core/pattern"
	"github.com/dmitrymomot/keywork/core/response"
)

const defaultName = "Keywork Router"

// mux is the private implementation of Router.
type mux[E any] struct {
	table  *table[E]
	logger *slog.Logger
	name   string
	env    E

	poweredBy       string
	introspection   bool
	caseInsensitive bool
	backgroundLimit int
	render          response.RenderOptions
}

func newMux[E any](opts ...Option[E]) *mux[E] {
	m := &mux[E]{
		table:     newTable[E](),
		logger:    logger.Discard(),
		name:      defaultName,
		poweredBy: PoweredBy,
		render:    response.RenderOptions{DocType: true},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// IsRequestHandlerComposite implements handler.Composite.
func (m *mux[E]) IsRequestHandlerComposite() bool {
	return true
}

func (m *mux[E]) DisplayName() string {
	return m.name
}

func (m *mux[E]) Register(verb Verb, patternLike any, targets ...Target[E]) {
	m.register(verb, patternLike, false, targets)
}

func (m *mux[E]) Get(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(GET, patternLike, false, handlerTargets(handlers))
}

func (m *mux[E]) Post(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(POST, patternLike, false, handlerTargets(handlers))
}

func (m *mux[E]) Put(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(PUT, patternLike, false, handlerTargets(handlers))
}

func (m *mux[E]) Patch(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(PATCH, patternLike, false, handlerTargets(handlers))
}

func (m *mux[E]) Delete(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(DELETE, patternLike, false, handlerTargets(handlers))
}

func (m *mux[E]) Head(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(HEAD, patternLike, false, handlerTargets(handlers))
}

func (m *mux[E]) Options(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(OPTIONS, patternLike, false, handlerTargets(handlers))
}

func (m *mux[E]) All(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(ALL, patternLike, false, handlerTargets(handlers))
}

func (m *mux[E]) Use(handlers ...handler.HandlerFunc[E]) {
	m.register(ALL, "/", true, handlerTargets(handlers))
}

func (m *mux[E]) UseAt(patternLike any, handlers ...handler.HandlerFunc[E]) {
	m.register(ALL, patternLike, true, handlerTargets(handlers))
}

func (m *mux[E]) Mount(patternLike any, subs ...handler.Composite[E]) {
	targets := make([]Target[E], len(subs))
	for i, sub := range subs {
		if sub == nil {
			panic(fmt.Errorf("%w on '%v'", ErrNilRouter, patternLike))
		}
		targets[i] = Delegate(sub)
	}
	m.register(ALL, patternLike, true, targets)
}

func (m *mux[E]) Dispose() {
	m.table.reset()
}

// register validates input and appends one entry per target. Router targets
// always match as a prefix; handler targets only when prefix is set.
func (m *mux[E]) register(verb Verb, patternLike any, prefix bool, targets []Target[E]) {
	if !verb.valid() {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidVerb, verb))
	}
	if len(targets) == 0 {
		panic(fmt.Errorf("%w on %s '%v'", ErrNoTargets, verb, patternLike))
	}

	var terminal, mount *pattern.Pattern
	for _, t := range targets {
		if err := t.validate(); err != nil {
			panic(fmt.Errorf("%w on %s '%v'", err, verb, patternLike))
		}

		var p *pattern.Pattern
		if prefix || t.kind == TargetRouter {
			if mount == nil {
				mount = m.compile(patternLike, true)
			}
			p = mount
		} else {
			if terminal == nil {
				terminal = m.compile(patternLike, false)
			}
			p = terminal
		}

		m.table.add(&entry[E]{verb: verb, pattern: p, target: t})
		m.logger.Debug("route registered",
			logger.Component("router"),
			slog.String("verb", string(verb)),
			logger.Pattern(p.Source()),
			logger.Handler(t.name),
		)
	}
}

func (m *mux[E]) compile(patternLike any, prefix bool) *pattern.Pattern {
	var opts []pattern.Option
	if prefix {
		opts = append(opts, pattern.WithPrefix())
	}

	switch p := patternLike.(type) {
	case string:
		if m.caseInsensitive {
			opts = append(opts, pattern.WithCaseInsensitive())
		}
		compiled, err := pattern.Compile(p, opts...)
		if err != nil {
			panic(fmt.Errorf("%w: %w", ErrInvalidPattern, err))
		}
		return compiled
	case *pattern.Pattern:
		if p == nil {
			break
		}
		if !prefix {
			return p
		}
		compiled, err := p.AsPrefix()
		if err != nil {
			panic(fmt.Errorf("%w: %w", ErrInvalidPattern, err))
		}
		return compiled
	case *regexp.Regexp:
		if p == nil {
			break
		}
		return pattern.FromRegexp(p, opts...)
	}
	panic(fmt.Errorf("%w: unsupported pattern type %T", ErrInvalidPattern, patternLike))
}

func handlerTargets[E any](handlers []handler.HandlerFunc[E]) []Target[E] {
	targets := make([]Target[E], len(handlers))
	for i, h := range handlers {
		targets[i] = Handle(h)
	}
	return targets
}
