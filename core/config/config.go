package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse is returned when environment variables cannot be parsed into a config struct.
var ErrParse = errors.New("failed to parse config from environment")

var (
	cache      sync.Map // reflect.Type -> any (a T value)
	dotenvOnce sync.Once
)

// Load fills cfg from the environment. The first call per type parses the
// environment (after loading a .env file if one exists); later calls copy the
// cached value.
func Load[T any](cfg *T) error {
	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	dotenvOnce.Do(func() {
		// A missing .env file is the normal production case.
		_ = godotenv.Load()
	})

	var v T
	if err := env.Parse(&v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParse, typ, err)
	}

	actual, _ := cache.LoadOrStore(typ, v)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error. Intended for startup code.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the given variables only, bypassing the process
// environment, .env files and the cache.
func Parse[T any](cfg *T, vars map[string]string) error {
	if vars == nil {
		vars = map[string]string{}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParse, reflect.TypeFor[T](), err)
	}
	return nil
}
