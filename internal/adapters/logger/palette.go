package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Level colors.
var (
	infoColor  = lipgloss.Color("#667085")
	warnColor  = lipgloss.Color("#F59E0B")
	errorColor = lipgloss.Color("#D93025")
)

// Line markers.
const (
	errorMark = "✗"
	warnMark  = "!"
	causeMark = "→"
)

// colorProfile honors NO_COLOR and otherwise detects the terminal's capabilities.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// newOutput wraps w for colored output. Build logs are usually collected from a pod's
// stderr, so TTY detection is skipped and only the color profile decides.
func newOutput(w io.Writer) *termenv.Output {
	return termenv.NewOutput(w, termenv.WithProfile(colorProfile()), termenv.WithTTY(true))
}

// levelStyle returns the line marker and color for level.
func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return errorMark + " ", termenv.RGBColor(string(errorColor))
	case level >= slog.LevelWarn:
		return warnMark + " ", termenv.RGBColor(string(warnColor))
	default:
		return "", termenv.RGBColor(string(infoColor))
	}
}
