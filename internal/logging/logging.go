// Package logging builds the zerolog logger used across the game.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// DefaultLevel applies when the configured level is empty or unknown.
const DefaultLevel = zerolog.WarnLevel

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// New returns a logger writing to w at level.
// Terminals get human-readable console output; anything else gets JSON lines.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = DefaultLevel
	}
	if isTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}
