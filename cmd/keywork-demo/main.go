// Command keywork-demo serves a small site built on the keywork router:
// a greeting page rendered with templ, JSON endpoints, sessions and
// background jobs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/keywork/core/config"
	"github.com/dmitrymomot/keywork/core/health"
	"github.com/dmitrymomot/keywork/core/logger"
	"github.com/dmitrymomot/keywork/core/server"
	"github.com/dmitrymomot/keywork/integration/database/redis"
	"github.com/dmitrymomot/keywork/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithDevelopment(cfg.AppName),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
	)

	env := Env{AppName: cfg.AppName, Logger: log}

	var (
		sessions middleware.SessionStore = middleware.NewMemorySessionStore()
		checks   []health.Check
	)
	if cfg.UseRedis {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", logger.Component("redis"), logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()

		sessions = middleware.NewRedisSessionStore(client)
		checks = append(checks, redis.Healthcheck(client))
	}

	r := newRootRouter(cfg, env, sessions, checks...)

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, r))

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
