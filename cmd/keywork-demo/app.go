package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/health"
	"github.com/dmitrymomot/keywork/core/logger"
	"github.com/dmitrymomot/keywork/core/response"
	"github.com/dmitrymomot/keywork/core/router"
	"github.com/dmitrymomot/keywork/middleware"
)

// Env holds the bindings every handler receives.
type Env struct {
	AppName string
	Logger  *slog.Logger
}

type (
	event = handler.Event[Env]
	next  = handler.Next
)

// newHelloRouter answers with a greeting page. It is mounted under /hello.
func newHelloRouter() router.Router[Env] {
	r := router.New[Env](router.WithDisplayName[Env]("Hello Router"))
	r.Get("/", func(ev *event, _ next) any {
		return greeting(ev.Env.AppName, "stranger")
	})
	r.Get("/:name", func(ev *event, _ next) any {
		return greeting(ev.Env.AppName, ev.Param("name"))
	})
	return r
}

// newAPIRouter serves JSON endpoints under /api.
func newAPIRouter() router.Router[Env] {
	r := router.New[Env](router.WithDisplayName[Env]("API Router"))
	r.Get("/json/:firstName/:lastName", func(ev *event, _ next) any {
		return map[string]string{
			"firstName": ev.Param("firstName"),
			"lastName":  ev.Param("lastName"),
		}
	})
	r.Get("/session", func(ev *event, _ next) any {
		sess, _ := middleware.GetSession(ev)
		requestID, _ := middleware.GetRequestID(ev)
		return map[string]any{
			"session":    sess.ID,
			"new":        sess.IsNew,
			"request_id": requestID,
		}
	})
	r.Post("/jobs", func(ev *event, _ next) any {
		requestID, _ := middleware.GetRequestID(ev)
		log := ev.Env.Logger
		ev.WaitUntil(func(ctx context.Context) error {
			select {
			case <-time.After(100 * time.Millisecond):
				log.InfoContext(ctx, "background job finished", logger.RequestID(requestID))
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		return response.JSONWithStatus(map[string]string{"status": "accepted"}, http.StatusAccepted)
	})
	return r
}

func newRootRouter(cfg Config, env Env, sessions middleware.SessionStore, checks ...health.Check) router.Router[Env] {
	sessionCfg := cfg.Session
	sessionCfg.Store = sessions
	sessionCfg.Logger = env.Logger

	r := router.NewFromConfig(cfg.Router,
		router.WithLogger[Env](env.Logger),
		router.WithEnv(env),
	)
	r.Use(
		middleware.RequestID[Env](),
		middleware.LoggingWithConfig[Env](middleware.LoggingConfig{
			Logger: env.Logger,
			Skip:   func(p string) bool { return p == "/health/live" || p == "/health/ready" },
		}),
	)
	r.UseAt("/api", middleware.SessionsWithConfig[Env](sessionCfg))

	r.Get("/", func(*event, next) any { return "Hello from /" })
	r.Get("/health/live", health.Liveness[Env])
	r.Get("/health/ready", health.Readiness[Env](env.Logger, checks...))
	r.Mount("/hello", newHelloRouter())
	r.Mount("/api", newAPIRouter())
	return r
}

func greeting(app, name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>Hello, %s!</h1><p>Served by %s.</p>",
			templ.EscapeString(name), templ.EscapeString(app))
		return err
	})
}
