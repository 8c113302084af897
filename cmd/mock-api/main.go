package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stocksight/internal/mockapi/config"
	delivery "stocksight/internal/mockapi/delivery/http"
	_ "stocksight/internal/mockapi/docs"
	"stocksight/internal/mockapi/repository"
	"stocksight/internal/mockapi/service"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the fixture-backed stock API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding, cfg.Logger.Output)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Mock API", logger.Field("name", cfg.App.Name))

	fixtures, err := repository.LoadFixtures(cfg.Fixtures.Path)
	if err != nil {
		appLogger.Fatal("Failed to load fixtures", logger.ErrorField(err), logger.StringField("path", cfg.Fixtures.Path))
	}
	fixtureRepo, err := repository.NewFixtureRepository(fixtures, appLogger)
	if err != nil {
		appLogger.Fatal("Invalid fixtures", logger.ErrorField(err))
	}
	appLogger.Info("Fixtures loaded", logger.IntField("symbols", len(fixtures.Stocks)))

	stockSvc := service.NewStockService(fixtureRepo, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	stockHandler := delivery.NewStockHandler(stockSvc, appLogger)
	stockHandler.RegisterRoutes(e.Group(common.APIBasePath))

	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title StockSight Mock API
// @version 1.0
// @description Fixture-backed implementation of the StockSight dashboard API.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{Use: "mock-api"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-mock-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing mock-api CLI: %s\n", err)
		os.Exit(1)
	}
}
