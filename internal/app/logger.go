package app

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide logger. Production always emits JSON for
// the log pipeline; elsewhere LOG_FORMAT picks the handler, defaulting to
// human-readable text. Every record carries the service name and source
// location.
func NewLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true}
	var handler slog.Handler
	if cfg != nil && (cfg.LogFormat == "json" || cfg.IsProduction()) {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With(slog.String("service", "freightdesk"))
}
