package main

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON slog.Logger writing to w. Source locations are added when
// source is set (debug runs).
func NewLogger(w io.Writer, level slog.Leveler, source bool) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level, AddSource: source})
	return slog.New(h)
}
