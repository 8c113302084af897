package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stocksight/internal/dashboard/dto"
	"stocksight/pkg/logger"

	"github.com/robfig/cron/v3"
)

// ErrScheduleExhausted is returned when a schedule has no next activation,
// e.g. "0 0 30 2 *".
var ErrScheduleExhausted = errors.New("watch schedule never fires")

// HomeSnapshot is the home page view produced by one watch tick.
type HomeSnapshot = View[string, dto.HomeResult]

// Watcher re-submits the home page for a symbol on a cron schedule.
type Watcher struct {
	home     *HomeService
	schedule cron.Schedule
	log      *logger.Logger
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// NewWatcher parses spec, a five-field cron expression or a descriptor such
// as "@every 1m".
func NewWatcher(home *HomeService, spec string, log *logger.Logger) (*Watcher, error) {
	schedule, err := cronParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid watch schedule %q: %w", spec, err)
	}
	if schedule.Next(time.Now()).IsZero() {
		return nil, fmt.Errorf("invalid watch schedule %q: %w", spec, ErrScheduleExhausted)
	}
	return &Watcher{home: home, schedule: schedule, log: log}, nil
}

// Start refreshes symbol immediately and then on every schedule activation
// until ctx is done. onTick receives the page view after each refresh,
// including failed ones.
func (w *Watcher) Start(ctx context.Context, symbol string, onTick func(HomeSnapshot)) error {
	if _, err := normalizeSymbol(symbol); err != nil {
		return err
	}

	for {
		w.tick(ctx, symbol, onTick)

		next := w.schedule.Next(time.Now())
		if next.IsZero() {
			w.log.Warn("Watch schedule has no next activation", logger.StringField("symbol", symbol))
			return ErrScheduleExhausted
		}
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			w.log.Info("Watcher stopping", logger.StringField("symbol", symbol))
			return nil
		case <-timer.C:
		}
	}
}

func (w *Watcher) tick(ctx context.Context, symbol string, onTick func(HomeSnapshot)) {
	_, err := w.home.Submit(ctx, symbol)
	if errors.Is(err, ErrSuperseded) || ctx.Err() != nil {
		return
	}
	if err != nil {
		w.log.Warn("Watch refresh failed", logger.StringField("symbol", symbol), logger.ErrorField(err))
	}
	onTick(w.home.View())
}
