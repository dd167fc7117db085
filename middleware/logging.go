package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/logger"
	"github.com/dmitrymomot/keywork/core/response"
)

// LoggingConfig configures the access logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip logging for specific paths
	Skip func(pathname string) bool
	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger
	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level
	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration
	// Component name for structured logging (default: "http")
	Component string
}

// Logging writes one access log record per request with the default configuration.
func Logging[E any](log *slog.Logger) handler.HandlerFunc[E] {
	return LoggingWithConfig[E](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates an access logging middleware. Records carry the
// final status of the downstream chain; 5xx are logged as errors, 4xx and
// slow requests as warnings.
func LoggingWithConfig[E any](cfg LoggingConfig) handler.HandlerFunc[E] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(ev *handler.Event[E], next handler.Next) any {
		if cfg.Skip != nil && cfg.Skip(ev.Pathname()) {
			return next()
		}

		start := time.Now()
		resp := next()
		duration := time.Since(start)

		status := http.StatusNotFound
		if resp != nil && !response.IsContinue(resp) {
			status = resp.Status()
		}

		req := ev.Request
		path := req.URL.Path
		if ev.OriginalURL != nil {
			path = ev.OriginalURL.Path
		}
		requestID, _ := GetRequestID(ev)

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Method(req.Method),
			logger.Path(path),
			logger.StatusCode(status),
			logger.Latency(duration),
			logger.ClientIP(req.RemoteAddr),
			logger.UserAgent(req.UserAgent()),
			logger.RequestID(requestID),
		}

		level := cfg.LogLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		case duration > cfg.SlowRequestThreshold:
			level = slog.LevelWarn
			attrs = append(attrs, slog.Bool("slow_request", true))
		}

		cfg.Logger.LogAttrs(ev.Context(), level, "request completed", attrs...)
		return resp
	}
}
