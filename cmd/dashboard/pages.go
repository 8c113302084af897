package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/service"
	"stocksight/internal/dashboard/view"

	"github.com/spf13/cobra"
)

const renderWidth = 100

var (
	historyRange  string
	historyCSVDir string
)

var stockCmd = &cobra.Command{
	Use:   "stock SYMBOL",
	Short: "Shows a stock snapshot with its one-month chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, func(ctx context.Context, a *app) (string, error) {
			_, err := a.pages.Home.Submit(ctx, args[0])
			v := a.pages.Home.View()
			return renderOnce(v.Status, v.Message, v.HasResult, func() string { return view.RenderHome(v.Result, renderWidth) }), err
		})
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict SYMBOL",
	Short: "Shows the price forecast for a stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, func(ctx context.Context, a *app) (string, error) {
			_, err := a.pages.Predict.Submit(ctx, args[0])
			v := a.pages.Predict.View()
			return renderOnce(v.Status, v.Message, v.HasResult, func() string { return view.RenderPrediction(v.Result, renderWidth) }), err
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history SYMBOL",
	Short: "Shows historical prices and moving averages, optionally exported as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, func(ctx context.Context, a *app) (string, error) {
			rangeFlag := historyRange
			if !cmd.Flags().Changed("range") {
				rangeFlag = a.cfg.Dashboard.DefaultRange
			}
			rng, err := dto.ParseRange(rangeFlag)
			if err != nil {
				return "", err
			}

			_, err = a.pages.History.Submit(ctx, dto.HistoryParam{Symbol: args[0], Range: rng})
			v := a.pages.History.View()
			out := renderOnce(v.Status, v.Message, v.HasResult, func() string { return view.RenderHistory(v.Result, renderWidth) })
			if err != nil || historyCSVDir == "" {
				return out, err
			}

			path, err := a.pages.History.SaveCSV(historyCSVDir)
			switch {
			case err != nil:
				return out, err
			case path == "":
				out += "\nNothing to export"
			default:
				out += "\nSaved " + path
			}
			return out, nil
		})
	},
}

var newsCmd = &cobra.Command{
	Use:   "news SYMBOL",
	Short: "Shows recent news for a stock with sentiment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, func(ctx context.Context, a *app) (string, error) {
			_, err := a.pages.News.Submit(ctx, args[0])
			v := a.pages.News.View()
			return renderOnce(v.Status, v.Message, v.HasResult, func() string { return view.RenderNews(v.Result, renderWidth) }), err
		})
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare SYMBOL1 SYMBOL2",
	Short: "Compares two stocks side by side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, func(ctx context.Context, a *app) (string, error) {
			_, err := a.pages.Compare.Submit(ctx, dto.CompareParam{Symbol1: args[0], Symbol2: args[1]})
			v := a.pages.Compare.View()
			return renderOnce(v.Status, v.Message, v.HasResult, func() string { return view.RenderComparison(v.Result, renderWidth) }), err
		})
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyRange, "range", "r", string(dto.DefaultRange), "Chart range: 1M, 6M, 1Y or 5Y")
	historyCmd.Flags().StringVar(&historyCSVDir, "csv", "", "Directory to export the series to as CSV")
}

// runPage performs one page submission and prints its rendering.
func runPage(cmd *cobra.Command, run func(ctx context.Context, a *app) (string, error)) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	out, err := run(ctx, a)
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return err
}

func renderOnce(status service.Status, message string, hasResult bool, body func() string) string {
	return view.RenderPage(view.Frame{Status: status, Message: message, Width: renderWidth}, hasResult, "", body)
}
