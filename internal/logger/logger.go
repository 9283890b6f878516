// Package logger provides the console logger shared by the commands. The
// arithmetic packages stay log-free; only the CLI surface logs.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Disable disables logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return logger
}
