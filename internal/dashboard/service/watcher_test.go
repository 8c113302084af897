package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"stocksight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type everySchedule time.Duration

func (s everySchedule) Next(t time.Time) time.Time {
	return t.Add(time.Duration(s))
}

type neverSchedule struct{}

func (neverSchedule) Next(time.Time) time.Time {
	return time.Time{}
}

func TestNewWatcherRejectsScheduleThatNeverFires(t *testing.T) {
	home := NewHomeService(&fakeRepository{}, nil, logger.NewNop())

	_, err := NewWatcher(home, "0 0 30 2 *", logger.NewNop())
	assert.ErrorIs(t, err, ErrScheduleExhausted)
}

func TestWatcherStopsWhenScheduleExhausted(t *testing.T) {
	repo := &fakeRepository{getStock: stockOK, getStockHistory: historyOK}
	home := NewHomeService(repo, nil, logger.NewNop())
	w := &Watcher{home: home, schedule: neverSchedule{}, log: logger.NewNop()}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ticks := 0
	err := w.Start(ctx, "aapl", func(HomeSnapshot) { ticks++ })
	assert.ErrorIs(t, err, ErrScheduleExhausted)
	assert.Equal(t, 1, ticks)
	assert.NoError(t, ctx.Err())
}

func TestNewWatcherRejectsBadSchedule(t *testing.T) {
	home := NewHomeService(&fakeRepository{}, nil, logger.NewNop())

	_, err := NewWatcher(home, "not a schedule", logger.NewNop())
	assert.Error(t, err)

	w, err := NewWatcher(home, "@every 1m", logger.NewNop())
	require.NoError(t, err)
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(time.Minute), w.schedule.Next(now))

	_, err = NewWatcher(home, "*/5 * * * *", logger.NewNop())
	assert.NoError(t, err)
}

func TestWatcherTicksUntilCancelled(t *testing.T) {
	repo := &fakeRepository{getStock: stockOK, getStockHistory: historyOK}
	home := NewHomeService(repo, nil, logger.NewNop())
	w := &Watcher{home: home, schedule: everySchedule(5 * time.Millisecond), log: logger.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	var (
		mu        sync.Mutex
		snapshots []HomeSnapshot
	)
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx, "aapl", func(v HomeSnapshot) {
			mu.Lock()
			defer mu.Unlock()
			snapshots = append(snapshots, v)
			if len(snapshots) == 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(snapshots), 3)
	for _, v := range snapshots[:3] {
		assert.Equal(t, StatusSuccess, v.Status)
		assert.Equal(t, "AAPL", v.Result.Stock.Symbol)
	}
}

func TestWatcherReportsFailures(t *testing.T) {
	repo := &fakeRepository{getStock: stockNotFound, getStockHistory: historyOK}
	home := NewHomeService(repo, nil, logger.NewNop())
	w := &Watcher{home: home, schedule: everySchedule(time.Hour), log: logger.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	var got HomeSnapshot
	err := w.Start(ctx, "NOPE", func(v HomeSnapshot) {
		got = v
		cancel()
	})
	require.NoError(t, err)
	assert.Equal(t, StatusFailure, got.Status)
	assert.NotEmpty(t, got.Message)
}

func TestWatcherRejectsBlankSymbol(t *testing.T) {
	home := NewHomeService(&fakeRepository{}, nil, logger.NewNop())
	w := &Watcher{home: home, schedule: everySchedule(time.Hour), log: logger.NewNop()}
	assert.ErrorIs(t, w.Start(context.Background(), "  ", func(HomeSnapshot) {}), ErrBlankInput)
}
