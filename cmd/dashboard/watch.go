package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stocksight/internal/dashboard/service"
	"stocksight/internal/dashboard/view"
	"stocksight/pkg/logger"
	"stocksight/pkg/utils"

	"github.com/spf13/cobra"
)

var watchSchedule string

var watchCmd = &cobra.Command{
	Use:   "watch SYMBOL",
	Short: "Refreshes a stock snapshot on a schedule until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchSchedule, "schedule", "s", "", `Cron expression or descriptor, e.g. "@every 1m" (defaults to dashboard.watch_schedule)`)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	schedule := watchSchedule
	if schedule == "" {
		schedule = a.cfg.Dashboard.WatchSchedule
	}
	watcher, err := service.NewWatcher(a.pages.Home, schedule, a.log)
	if err != nil {
		return err
	}

	a.log.Info("Watching stock", logger.StringField("symbol", args[0]), logger.StringField("schedule", schedule))
	out := cmd.OutOrStdout()
	return watcher.Start(ctx, args[0], func(v service.HomeSnapshot) {
		fmt.Fprintf(out, "\n%s\n", utils.PrettyDate(utils.TimeNowLocal()))
		fmt.Fprintln(out, renderOnce(v.Status, v.Message, v.HasResult, func() string {
			return view.RenderHome(v.Result, renderWidth)
		}))
	})
}
