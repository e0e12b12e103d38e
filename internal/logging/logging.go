// Package logging builds the process-wide slog logger. Logs go to a rotating
// file rather than the terminal so they never interleave with menu output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much is logged
type Options struct {
	File      string
	Level     string
	MaxSizeMB int
}

// New returns a logger writing logfmt lines to opts.File. The returned
// closer flushes and closes the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := charmlog.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
	}

	return slog.New(newHandler(sink, level)), sink, nil
}

// Discard returns a logger that drops everything, for tests and dry runs
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newHandler(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
		Formatter:       charmlog.LogfmtFormatter,
		Prefix:          "todo",
	})
}
