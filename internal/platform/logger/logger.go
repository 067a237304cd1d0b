package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Text output keeps local dev
// readable; services receive it by injection rather than via slog.Default.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
