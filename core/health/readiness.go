package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/logger"
	"github.com/dmitrymomot/keywork/core/response"
)

// Check probes one dependency.
type Check func(context.Context) error

// Readiness answers "READY" when every check passes and 503 otherwise.
// Nil checks are skipped.
func Readiness[E any](log *slog.Logger, checks ...Check) handler.HandlerFunc[E] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ev *handler.Event[E], _ handler.Next) any {
		ctx := ev.Context()
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
				return response.ErrServiceUnavailable
			}
		}
		return response.String("READY")
	}
}
