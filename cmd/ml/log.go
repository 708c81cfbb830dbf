package main

import (
	"os"

	"github.com/rs/zerolog"
)

type rootCmdConfig struct {
	verbose bool
}

// Logger returns a console logger on stderr, at debug level
// when the verbose flag is set.
func (c *rootCmdConfig) Logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
