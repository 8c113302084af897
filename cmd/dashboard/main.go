package main

import (
	"fmt"
	"os"

	"stocksight/internal/dashboard/config"
	"stocksight/internal/dashboard/repository"
	"stocksight/internal/dashboard/service"
	"stocksight/pkg/logger"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "dashboard",
	Short:         "Stock dashboard for the StockSight API",
	Long:          `Looks up stock snapshots, forecasts, history, news and comparisons from a StockSight backend, either one page at a time or in an interactive terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app holds what every subcommand needs.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	pages *service.Dashboard
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding, cfg.Logger.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	repo := repository.NewStockAPIRepository(cfg, appLogger)
	recent := service.NewRecentStocks(cfg.Dashboard.RecentTTL, cfg.Dashboard.RecentLimit)

	appLogger.Debug("Dashboard initialized",
		logger.StringField("base_url", cfg.API.BaseURL),
		logger.DurationField("timeout", cfg.API.Timeout),
	)
	return &app{cfg: cfg, log: appLogger, pages: service.NewDashboard(repo, recent, appLogger)}, nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(stockCmd, predictCmd, historyCmd, newsCmd, compareCmd, tuiCmd, watchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
