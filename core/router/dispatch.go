package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/logger"
	"github.com/dmitrymomot/keywork/core/response"
)

// Dispatch runs the request through this router's matching routes. parent
// continues with the enclosing router and may be nil at the top level.
//
// Without a match the router answers 404, or returns response.Continue()
// when a parent can try its remaining routes instead.
func (m *mux[E]) Dispatch(ev *handler.Event[E], parent handler.Next) *response.Response {
	verb, ok := ParseVerb(ev.Method())
	if !ok {
		m.logger.Debug("unsupported method",
			logger.Component("router"),
			logger.Method(ev.Method()),
			logger.Path(ev.Pathname()),
		)
		return response.FromStatus(http.StatusNotImplemented)
	}

	candidates := m.table.match(verb, ev.Pathname())
	if len(candidates) == 0 {
		if parent != nil {
			return response.Continue()
		}
		return response.FromStatus(http.StatusNotFound)
	}

	c := &chain[E]{
		mux:        m,
		ev:         ev,
		candidates: candidates,
		parent:     parent,
		results:    make([]*response.Response, len(candidates)+1),
		started:    make([]bool, len(candidates)+1),
	}
	return c.at(0)
}

// chain walks an immutable candidate list with a cursor. Each position is
// resolved at most once; later calls return the memoized response.
type chain[E any] struct {
	mux        *mux[E]
	ev         *handler.Event[E]
	candidates []candidate[E]
	parent     handler.Next

	results []*response.Response
	started []bool
}

func (c *chain[E]) at(i int) *response.Response {
	if c.started[i] {
		if r := c.results[i]; r != nil {
			return r
		}
		// Re-entered while still resolving; treat as exhausted.
		return response.FromStatus(http.StatusNotFound)
	}
	c.started[i] = true

	var r *response.Response
	if i == len(c.candidates) {
		r = c.exhausted()
	} else {
		r = c.invoke(i)
		if response.IsContinue(r) {
			r = c.at(i + 1)
		}
	}

	c.results[i] = r
	return r
}

func (c *chain[E]) exhausted() *response.Response {
	if c.parent != nil {
		if r := c.parent(); r != nil {
			return r
		}
	}
	return response.FromStatus(http.StatusNotFound)
}

// invoke runs candidate i. Panics, returned errors and values that cannot be
// coerced are converted here, at the level that invoked the target.
func (c *chain[E]) invoke(i int) (resp *response.Response) {
	cand := c.candidates[i]
	target := cand.entry.target
	child := c.ev.Derive(cand.match.Remaining(), c.ev.BasePath+cand.match.Base, cand.match.Params)
	next := func() *response.Response { return c.at(i + 1) }

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			c.mux.logger.ErrorContext(child.Context(), "handler panicked",
				c.attrs(child, cand,
					logger.Error(perr),
					logger.Panic(perr.Value()),
					logger.Stack(perr.Stack()),
				)...,
			)
			resp = response.FromError(perr)
		}
	}()

	c.mux.logger.DebugContext(child.Context(), "dispatching route", c.attrs(child, cand)...)

	if target.kind == TargetRouter {
		resp = target.composite.Dispatch(child, next)
		if resp == nil {
			return response.Continue()
		}
		return resp
	}

	v := target.handler(child, next)
	resp, err := response.Coerce(v, c.mux.render)
	if err != nil {
		err = fmt.Errorf("%w from %s: %w", ErrCoerce, target.name, err)
		c.mux.logger.ErrorContext(child.Context(), "invalid handler result",
			c.attrs(child, cand, logger.Error(err))...,
		)
		return response.FromError(err)
	}

	if response.Classify(v) == response.KindError {
		c.logReturnedError(child, cand, v.(error), resp.Status())
	}
	return resp
}

func (c *chain[E]) logReturnedError(ev *handler.Event[E], cand candidate[E], err error, status int) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	c.mux.logger.Log(ev.Context(), level, "handler returned error",
		c.attrs(ev, cand, logger.Error(err), logger.StatusCode(status))...,
	)
}

func (c *chain[E]) attrs(ev *handler.Event[E], cand candidate[E], extra ...slog.Attr) []any {
	out := make([]any, 0, 6+len(extra))
	out = append(out,
		logger.Component("router"),
		logger.Method(ev.Method()),
		logger.Path(ev.Pathname()),
		logger.BasePath(ev.BasePath),
		logger.Pattern(cand.entry.pattern.Source()),
		logger.Handler(cand.entry.target.name),
	)
	for _, a := range extra {
		out = append(out, a)
	}
	return out
}
