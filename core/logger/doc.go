// Package logger builds structured slog loggers and attribute helpers for
// lexical components.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithProduction("catalog"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("catalog loaded", logger.Component("asset"), logger.Count("lines", n))
//
// WithDevelopment selects text output at debug level, WithStaging and
// WithProduction JSON at info level. WithOutput, WithAttr and
// WithHandlerOptions fine-tune the handler.
//
// # Context Values
//
// Context extractors add attributes from the context of records logged with
// the *Context methods:
//
//	log := logger.New(logger.WithContextValue("request_id", requestIDKey{}))
//	log.InfoContext(ctx, "resolving")
//
// # Resolution Logging
//
// Observer adapts a logger to line.Observer. Attach it to a key chain with
// Logger or to a resolver with resolve.WithObserver:
//
//	r := resolve.New(resolve.WithObserver(logger.NewObserver(log)))
//
// Ok resolutions are logged at debug level, degraded ones at warn level and
// failures at error level, with the key text, culture and status codes.
//
// # Attribute Helpers
//
// Helpers such as Error, Errors, Duration, Component and LineKey return the
// empty attribute for nil input, which slog drops.
package logger
