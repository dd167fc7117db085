// Package logger builds slog loggers and provides attribute helpers shared
// by the router, the server and the middleware.
//
//	log := logger.New(
//		logger.WithProduction("api"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Error("handler failed",
//		logger.Component("router"),
//		logger.Path(r.URL.Path),
//		logger.Error(err),
//	)
//
// Most helpers return an empty attribute for zero input (nil error, empty
// ID), which slog drops from the output.
package logger
