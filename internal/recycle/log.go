package recycle

import (
	"io"
	"log/slog"
	"os"
)

// logLevel gates engine debug output. Default Info keeps shifts quiet.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for every ScrollRect that
// uses a logger built by NewLogger.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// NewLogger returns a text logger writing to w at the shared engine level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

var defaultLogger = NewLogger(os.Stderr)

// SetLogOutput points the default engine logger at w. ScrollRects created
// afterwards without WithLogger write there.
func SetLogOutput(w io.Writer) {
	defaultLogger = NewLogger(w)
}
