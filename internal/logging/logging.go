package logging

import (
	"log/slog"
	"os"
)

// New initializes a new slog logger and sets it as the default.
// The format argument selects the output handler; "json" is intended for
// production, anything else falls back to the developer-friendly text
// handler with source locations.
func New(format string) {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})
	}

	slog.SetDefault(slog.New(handler))
}
