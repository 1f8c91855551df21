package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gravitrone/recycler/internal/recycle"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ConfigureLogging sets the engine log level and, when path is set, sends
// engine logs to that file instead of stderr. The TUI owns the terminal, so
// debug output there should always go to a file.
func ConfigureLogging(verbose bool, path string) (io.Closer, error) {
	recycle.SetVerbose(verbose)
	if path == "" {
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	recycle.SetLogOutput(f)
	return f, nil
}
