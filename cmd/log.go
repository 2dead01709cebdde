package cmd

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// logger is shared by every command. Safe to use before initLogger is
// called; defaults to slog.Default().
var logger = slog.Default()

// initLogger sends logs to w, which is stderr outside of tests since stdout
// carries the report. Each run is tagged with a fresh id.
func initLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h).With("run", uuid.NewString())
	slog.SetDefault(logger)
}
