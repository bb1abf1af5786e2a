package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aryasadawrate19/AINux-Proto/internal/storage"
	"github.com/aryasadawrate19/AINux-Proto/internal/tui"
)

var historyClear bool

// getHistoryCommand returns the history command.
func getHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse executed commands",
		Long:  "Open a TUI over the command history: what you asked, what ran, and how it went.",
		RunE:  runHistory,
	}

	cmd.Flags().BoolVar(&historyClear, "clear", false, "delete the history instead of browsing it")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	configDir, err := storage.GetConfigDir()
	if err != nil {
		return err
	}

	cfg := storage.GetConfig()
	history, err := storage.OpenHistory(configDir, cfg.History.MaxRecords)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	if historyClear {
		if err := history.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared")
		return nil
	}

	model := tui.NewModel(history.Records())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
