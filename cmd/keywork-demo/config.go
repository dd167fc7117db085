package main

import (
	"github.com/dmitrymomot/keywork/core/router"
	"github.com/dmitrymomot/keywork/core/server"
	"github.com/dmitrymomot/keywork/integration/database/redis"
	"github.com/dmitrymomot/keywork/middleware"
)

// Config is the demo application configuration loaded from the environment.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"keywork-demo"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
	// UseRedis switches the session store from memory to Redis.
	UseRedis bool `env:"USE_REDIS" envDefault:"false"`

	Router  router.Config
	Server  server.Config
	Redis   redis.Config
	Session middleware.SessionConfig
}
