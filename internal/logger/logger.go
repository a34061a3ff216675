// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared structured logger.
var Logger *slog.Logger

var level = new(slog.LevelVar)

func init() {
	level.Set(parseLevel(os.Getenv("LOG_LEVEL"))) // debug|info|warn|error
	SetOutput(os.Stderr)
}

// SetOutput re-targets the shared logger. Терминальный фронтенд пишет лог в файл,
// чтобы не портить экран.
func SetOutput(w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(Logger)
}

// SetLevel overrides the level taken from LOG_LEVEL.
func SetLevel(s string) {
	level.Set(parseLevel(s))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func Debugf(format string, args ...any) { Logger.Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { Logger.Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { Logger.Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { Logger.Error(fmt.Sprintf(format, args...)) }
