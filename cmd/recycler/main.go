package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/recycler/internal/cmd"
	"github.com/gravitrone/recycler/internal/recycle"
	"github.com/gravitrone/recycler/internal/ui"
)

func main() {
	if err := newRoot().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRoot() *cobra.Command {
	var (
		verbose bool
		logFile string
		logs    io.Closer
	)
	root := &cobra.Command{
		Use:   "recycler",
		Short: "Recycler - recyclable scroll grid",
		Long:  "Recycler: browse a large grid through a small pool of recycled tiles, or inspect its capacity plan.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			c, err := cmd.ConfigureLogging(verbose, logFile)
			if err != nil {
				return err
			}
			logs = c
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logs == nil {
				return nil
			}
			return logs.Close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(logFile)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine decisions at debug level")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write engine logs to this file")

	root.AddCommand(cmd.PlanCmd())
	root.AddCommand(cmd.SimulateCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func runTUI(logFile string) error {
	cfg, err := cmd.LoadOrDefault()
	if err != nil {
		return err
	}
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("the grid browser needs a terminal; try 'recycler plan' or 'recycler simulate'")
	}
	if logFile == "" {
		// The TUI owns the terminal.
		recycle.SetLogOutput(io.Discard)
	}

	app, err := ui.NewApp(*cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
