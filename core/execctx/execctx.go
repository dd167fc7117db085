package execctx

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of background work scheduled past the response.
type Task func(ctx context.Context) error

// Context is the runtime execution context handed to every request. It lets
// handlers schedule work that must finish even after the response is sent.
type Context interface {
	WaitUntil(task Task)
}

// Group collects background tasks for one request and waits for them.
// Tasks run on their own goroutines with a context that outlives the request.
type Group struct {
	ctx context.Context
	eg  errgroup.Group

	mu    sync.Mutex
	count int
}

// New creates a group whose tasks inherit values, but not cancellation, from ctx.
// A limit > 0 bounds the number of tasks running at once.
func New(ctx context.Context, limit int) *Group {
	if ctx == nil {
		ctx = context.Background()
	}
	g := &Group{ctx: context.WithoutCancel(ctx)}
	if limit > 0 {
		g.eg.SetLimit(limit)
	}
	return g
}

// WaitUntil schedules task. Panics inside the task are not recovered.
func (g *Group) WaitUntil(task Task) {
	if task == nil {
		return
	}
	g.mu.Lock()
	g.count++
	g.mu.Unlock()

	g.eg.Go(func() error {
		return task(g.ctx)
	})
}

// Len returns the number of tasks scheduled so far.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count
}

// Wait blocks until every scheduled task returns and reports the first error.
func (g *Group) Wait() error {
	return g.eg.Wait()
}

// detached runs each task on its own goroutine and only logs failures.
type detached struct {
	logger *slog.Logger
}

// Detached returns a Context for callers that will not wait for background
// work, e.g. when Fetch is invoked without an execution context. Failed
// tasks are logged at error level.
func Detached(logger *slog.Logger) Context {
	if logger == nil {
		logger = slog.Default()
	}
	return detached{logger: logger}
}

func (d detached) WaitUntil(task Task) {
	if task == nil {
		return
	}
	go func() {
		if err := task(context.Background()); err != nil {
			d.logger.Error("background task failed", slog.String("component", "execctx"), slog.Any("error", err))
		}
	}()
}
