// Package logger builds the service's structured loggers on top of log/slog.
//
// New assembles a *slog.Logger from functional options: output format (text
// or json), minimum level, static attributes and ContextExtractor callbacks
// that copy request-scoped values (request id, client address) into
// every record. Environment presets (WithEnvironment) pick sensible defaults
// for development, staging and production.
//
// The attribute helpers in attr.go keep key names consistent across packages,
// in particular for authorization decisions:
//
//	log.DebugContext(ctx, "resource check",
//	    logger.Role(pc.UserRole),
//	    logger.Resource("files"),
//	    logger.Action("update:own"),
//	    logger.Decision(false),
//	)
//
// Helpers that take an error or an identifier return an empty slog.Attr for
// nil or empty input, which slog drops, so callers never need a nil check.
//
// Noop returns a logger that discards everything and is used as the default
// by packages that accept an optional logger.
package logger
