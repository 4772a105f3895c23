package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a human-readable debug logger for local runs.
// Other environments use JSON handlers picked in components.SetupLogger.
func SetupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
