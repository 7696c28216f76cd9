package logger

import (
	"log/slog"
	"strings"
)

// Logger is the process logger. It starts as slog.Default until one of the
// Init functions replaces it.
var Logger = slog.Default()

// InitLogger installs a JSON stdout logger at info level. Used by tests and
// tools that do not export logs.
func InitLogger() *slog.Logger {
	Logger = slog.New(NewMultiHandlerStdoutOnly(slog.LevelInfo))
	slog.SetDefault(Logger)

	return Logger
}

// InitLoggerWithOTel installs the service logger. When otelEnabled is set the
// records are also shipped through the OpenTelemetry log bridge, which must be
// configured (utils/otel.InitProvider) before this is called.
func InitLoggerWithOTel(level string, otelEnabled bool) *slog.Logger {
	lvl := ParseLevel(level)

	var handler slog.Handler
	if otelEnabled {
		handler = NewMultiHandler(lvl)
	} else {
		handler = NewMultiHandlerStdoutOnly(lvl)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", lvl.String(), "otel", otelEnabled)

	return Logger
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
