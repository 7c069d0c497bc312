// Package cli wires the sysdash commands. The root command runs the
// dashboard; the subcommands take one-off readings for scripts.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sysdash/internal/config"
	"github.com/Dicklesworthstone/sysdash/internal/errors"
	"github.com/Dicklesworthstone/sysdash/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "sysdash",
	Short: "Live terminal dashboard for host metrics",
	Long: `sysdash samples CPU, memory, disks, network and processes every few
seconds and renders them as live panels.

Tab and Shift+Tab (or Backspace) move between panels; q, Esc or F10 quit.

Diagnostics:
  SYSDASH_LOG_FILE  write logs to this file (otherwise discarded)
  SYSDASH_DEBUG     include debug lines in the log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		closeLog, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		defer closeLog()
		return ui.RunTUI(cfg)
	},
}

// setupLogging points the standard logger at cfg.LogFile, or discards it.
// The dashboard owns the terminal, so logs never go to stderr while it runs.
func setupLogging(cfg config.Config) (func(), error) {
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "sysdash")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Could not open log file %s", cfg.LogFile),
			"Point SYSDASH_LOG_FILE at a writable path, or unset it")
	}
	return func() { _ = f.Close() }, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}
