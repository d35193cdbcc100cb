// Package logger builds configured *slog.Logger instances.
//
// The factory keeps the standard library's slog as the logging API and only
// standardizes construction: output format (JSON for production, text for
// development), level, destination and static attributes.
//
//	log := logger.New(
//	    logger.WithService("orders"),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
// Loggers are passed to components explicitly; nothing in this module
// installs a process-global logger or default.
package logger
