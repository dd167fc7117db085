package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/keywork/core/execctx"
	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/logger"
	"github.com/dmitrymomot/keywork/core/response"
)

// Fetch dispatches req as the outermost router.
func (m *mux[E]) Fetch(req *http.Request, env E, exec execctx.Context) *response.Response {
	if exec == nil {
		exec = execctx.Detached(m.logger)
	}
	return m.FetchEvent(handler.NewEvent(req, env, exec))
}

// FetchEvent dispatches a prepared event as the outermost router and applies
// default headers to the result. It never returns nil or the continue sentinel.
func (m *mux[E]) FetchEvent(ev *handler.Event[E]) *response.Response {
	if ev.Data == nil {
		ev.Data = make(handler.Data)
	}
	if ev.OriginalURL == nil && ev.Request != nil {
		u := *ev.Request.URL
		ev.OriginalURL = &u
	}

	var resp *response.Response
	if m.introspection && isIntrospection(ev) {
		resp = m.introspect()
	} else {
		resp = m.Dispatch(ev, nil)
	}
	if resp == nil || response.IsContinue(resp) {
		resp = response.FromStatus(http.StatusNotFound)
	}

	return m.applyDefaultHeaders(resp)
}

// applyDefaultHeaders decorates a copy, so shared responses stay untouched.
func (m *mux[E]) applyDefaultHeaders(resp *response.Response) *response.Response {
	if m.poweredBy == "" {
		return resp
	}
	out := resp.Clone()
	out.Header.Set("X-Powered-By", m.poweredBy)
	return out
}

// ServeHTTP adapts the router to net/http. Handlers receive the env set with
// WithEnv. Background tasks are awaited after the response is flushed.
func (m *mux[E]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ww := newResponseWriter(w)
	exec := execctx.New(r.Context(), m.backgroundLimit)

	resp := m.Fetch(r, m.env, exec)
	if r.Method == http.MethodHead {
		resp = resp.Clone()
		resp.Body = nil
	}

	if err := resp.Write(r.Context(), ww); err != nil {
		m.logger.ErrorContext(r.Context(), "failed to write response",
			logger.Component("router"),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		if !ww.Written() {
			_ = response.FromStatus(http.StatusInternalServerError).Write(r.Context(), ww)
		}
	}

	m.logger.DebugContext(r.Context(), "request served",
		logger.Component("router"),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.StatusCode(ww.Status()),
		slog.Int64("bytes", ww.bytes),
		logger.Latency(time.Since(start)),
	)

	if exec.Len() == 0 {
		return
	}
	ww.Flush()
	if err := exec.Wait(); err != nil {
		m.logger.ErrorContext(r.Context(), "background task failed",
			logger.Component("router"),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
	}
}
