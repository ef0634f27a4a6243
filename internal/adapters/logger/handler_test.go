package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/monobase/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		want  string
	}{
		{"info", slog.LevelInfo, "information", "information\n"},
		{"warn", slog.LevelWarn, "careful", "! careful\n"},
		{"error", slog.LevelError, "broken", "✗ broken\n"},
		{"debug filtered", slog.LevelDebug, "hidden", ""},
		{"continuation aligned", slog.LevelError, "a\nb", "✗ a\n  b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, nil))
			lg.Log(t.Context(), tt.level, tt.msg)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).With("generation", 3).WithGroup("venv")
	lg.Info("installing", "name", "python3.12-torch2.4.1-cu124")

	assert.Equal(t, "installing venv.generation=3 venv.name=python3.12-torch2.4.1-cu124\n", buf.String())
}

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, logger.ColorProfileExported())

	t.Setenv("NO_COLOR", "")
	p := logger.ColorProfileExported()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii)
}

func TestLevelStyle(t *testing.T) {
	t.Parallel()

	prefix, _ := logger.LevelStyleExported(slog.LevelError)
	assert.Equal(t, "✗ ", prefix)
	prefix, _ = logger.LevelStyleExported(slog.LevelWarn)
	assert.Equal(t, "! ", prefix)
	prefix, _ = logger.LevelStyleExported(slog.LevelInfo)
	assert.Empty(t, prefix)
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, logger.NewPrettyHandler(nil, nil))
}
