package main

import (
	"context"
	"fmt"

	"stocksight/internal/dashboard/delivery/tui"
	"stocksight/internal/dashboard/dto"
	"stocksight/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Starts the interactive dashboard",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	rng, err := dto.ParseRange(a.cfg.Dashboard.DefaultRange)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a.log.Info("Starting dashboard TUI", logger.StringField("base_url", a.cfg.API.BaseURL))
	p := tea.NewProgram(
		tui.New(ctx, a.pages, rng, a.cfg.Dashboard.ExportDir, a.log),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited: %w", err)
	}
	return nil
}
