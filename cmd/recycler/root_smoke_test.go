package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTUIWithoutTerminalReturnsError(t *testing.T) {
	if isInteractiveTerminal(os.Stdin) && isInteractiveTerminal(os.Stdout) {
		t.Skip("attached to a terminal")
	}
	t.Setenv("HOME", t.TempDir())

	err := runTUI("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

func TestRunTUIBadConfigReturnsError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfgDir := filepath.Join(dir, ".recycler")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("axis: diagonal\n"), 0600))

	err := runTUI("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown axis")
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"recycler", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}

func TestRootRunsSimulateWithLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	logPath := filepath.Join(dir, "engine.log")

	root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--log-file", logPath, "simulate", "--total", "20"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "bind total=20")
	_, err := os.Stat(logPath)
	assert.NoError(t, err)
}
