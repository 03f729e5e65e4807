package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitneat/internal/tui"
	"github.com/mmynk/splitneat/pkg/logging"
)

// tuiCmd runs the terminal UI
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Split bills from the terminal",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The UI owns the terminal; logs would corrupt it.
	logging.Setup(io.Discard, cfg.LogLevel)

	l, _, store, err := openLedger(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	model, err := tui.New(cmd.Context(), l)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	return nil
}
