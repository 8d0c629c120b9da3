package logging

import (
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/ecdbg/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(os.Getenv("ECDBG_LOG_LEVEL"), cfg.Debug),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && !cfg.Debug {
				return slog.Attr{}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = shortPath(source.File)
				}
			}
			return a
		},
		AddSource: cfg.Debug,
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// Level parses a log level name. --debug wins over the environment.
func Level(name string, debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	switch strings.ToLower(name) {
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

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	if idx := strings.Index(file, "ecdbg/"); idx != -1 {
		return file[idx+len("ecdbg/"):]
	}
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/"); idx != -1 {
		if idx2 := strings.LastIndex(file, f[:idx]); idx2 != -1 {
			return file[idx2+len(f[:idx])+1:]
		}
	}
	parts := strings.Split(file, "/")
	return parts[len(parts)-1]
}
