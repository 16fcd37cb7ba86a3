package entropy

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped JSON logger writing to w.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsoleLogger returns a human-readable logger on stderr. Colors are
// disabled when stderr is not a terminal.
func NewConsoleLogger(level zerolog.Level) zerolog.Logger {
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	cw := zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		NoColor:    !tty,
		TimeFormat: time.TimeOnly,
	}
	return NewLogger(cw, level)
}
