package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the handler format and an optional rotating log file.
// Output always goes to stderr, and to File as well when it is set.
type Options struct {
	Format string
	File   string
	Level  slog.Level
}

// New builds the logger and returns a close func for the log file, if any.
func New(opts Options) (*slog.Logger, func() error) {
	var w io.Writer = os.Stderr
	closer := func() error { return nil }

	if len(opts.File) != 0 {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stderr, file)
		closer = file.Close
	}

	return slog.New(newHandler(w, opts)), closer
}

func newHandler(w io.Writer, opts Options) slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	if strings.EqualFold(opts.Format, "json") {
		return slog.NewJSONHandler(w, handlerOpts)
	}

	return slog.NewTextHandler(w, handlerOpts)
}
