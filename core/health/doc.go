// Package health provides handlers for service health probes.
//
//	r.Get("/health/live", health.Liveness[Env])
//	r.Get("/health/ready", health.Readiness[Env](log, redis.Healthcheck(client)))
//
// Checks follow the func(context.Context) error signature and run in order;
// the first failure answers 503.
package health
