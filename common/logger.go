package common

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger used by every rhymecore component.
// It defaults to a human-readable console writer so `go run` output during
// development is readable; callers embedding rhymecore in a service should
// call SetLogger with their own configured zerolog.Logger.
var Log zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLogger replaces the package-level logger used by rhymecore and all of
// its internal components.
func SetLogger(l zerolog.Logger) {
	Log = l
}

// Logger returns the currently configured package-level logger.
func Logger() zerolog.Logger {
	return Log
}
