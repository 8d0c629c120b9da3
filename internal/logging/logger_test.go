package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		debug bool
		want  slog.Level
	}{
		{"default", "", false, slog.LevelInfo},
		{"debug env", "DEBUG", false, slog.LevelDebug},
		{"warning alias", "warning", false, slog.LevelWarn},
		{"error", "error", false, slog.LevelError},
		{"unknown keeps info", "verbose", false, slog.LevelInfo},
		{"debug flag wins", "error", true, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.env, tt.debug))
		})
	}
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/scan_events.go", shortPath("/home/dev/ecdbg/internal/usecase/scan_events.go"))
	assert.Equal(t, "main.go", shortPath("/elsewhere/main.go"))
}
