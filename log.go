package optspec

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger receives debug traces from registration, scanning, the value
// pipeline, and dispatch. Everything is discarded unless a consumer installs
// a logger through SetLogger.
var logger = newDiscardLogger()

func newDiscardLogger() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel)
	return l
}

// SetLogger routes the package's debug traces to l. Passing nil restores the
// discarding default.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = newDiscardLogger()
		return
	}
	logger = l
}
