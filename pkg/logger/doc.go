// Package logger builds the structured slog.Logger used across the service.
//
// New assembles a JSON or text handler from functional options, attaches
// static attributes (service name, environment) and wraps the handler so that
// request-scoped values, such as the request id, are pulled out of the
// context on every record. NewFromConfig applies the environment-driven
// defaults: text/debug for development, JSON/info for staging and production.
//
// Attribute helpers (Error, Component, RequestID, AccountID, Email, ...) keep
// key names consistent across packages. Middleware emits one record per HTTP
// request with method, path, status and duration.
//
// # Usage
//
//	log := logger.NewFromConfig(cfg,
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "account created",
//		logger.Email(acc.Email),
//		logger.Component("oauth"),
//	)
package logger
