package service

import (
	"context"
	"errors"
	"testing"

	"stocksight/internal/dashboard/repository"
	"stocksight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func echoPage(fetch FetchFunc[string, string]) *Page[string, string] {
	return NewPage("test", "Something went wrong", normalizeSymbol, fetch, logger.NewNop())
}

func TestPageBlankInputIsNoop(t *testing.T) {
	calls := 0
	page := echoPage(func(ctx context.Context, in string) (string, error) {
		calls++
		return in, nil
	})

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := page.Submit(context.Background(), in)
		assert.ErrorIs(t, err, ErrBlankInput)
	}

	assert.Equal(t, 0, calls)
	view := page.View()
	assert.Equal(t, StatusIdle, view.Status)
	assert.Equal(t, uint64(0), view.Seq)
}

func TestPageBlankInputKeepsPreviousState(t *testing.T) {
	page := echoPage(func(ctx context.Context, in string) (string, error) { return in, nil })

	_, err := page.Submit(context.Background(), "aapl")
	require.NoError(t, err)
	before := page.View()

	_, err = page.Submit(context.Background(), " ")
	require.ErrorIs(t, err, ErrBlankInput)
	assert.Equal(t, before, page.View())
}

func TestPageTransitions(t *testing.T) {
	var page *Page[string, string]
	page = echoPage(func(ctx context.Context, in string) (string, error) {
		assert.True(t, page.Loading())
		assert.Equal(t, StatusLoading, page.View().Status)
		return "result:" + in, nil
	})

	assert.Equal(t, StatusIdle, page.View().Status)

	out, err := page.Submit(context.Background(), " msft ")
	require.NoError(t, err)
	assert.Equal(t, "result:MSFT", out)

	view := page.View()
	assert.Equal(t, StatusSuccess, view.Status)
	assert.Equal(t, "MSFT", view.Input)
	assert.True(t, view.HasResult)
	assert.Equal(t, "result:MSFT", view.Result)
	assert.False(t, page.Loading())
}

func TestPageFailureClearsResult(t *testing.T) {
	fail := false
	page := echoPage(func(ctx context.Context, in string) (string, error) {
		if fail {
			return "", errors.New("Failed to fetch stock data")
		}
		return in, nil
	})

	_, err := page.Submit(context.Background(), "AAPL")
	require.NoError(t, err)

	fail = true
	_, err = page.Submit(context.Background(), "ZZZZ")
	require.Error(t, err)

	view := page.View()
	assert.Equal(t, StatusFailure, view.Status)
	assert.False(t, view.HasResult)
	assert.Empty(t, view.Result)
	assert.Equal(t, "Failed to fetch stock data", view.Message)

	fail = false
	_, err = page.Submit(context.Background(), "AAPL")
	require.NoError(t, err)
	view = page.View()
	assert.Equal(t, StatusSuccess, view.Status)
	assert.Empty(t, view.Message)
	assert.NoError(t, view.Err)
}

func TestPageFallbackMessage(t *testing.T) {
	page := echoPage(func(ctx context.Context, in string) (string, error) {
		return "", errors.New("")
	})

	_, err := page.Submit(context.Background(), "AAPL")
	require.Error(t, err)
	assert.Equal(t, "Something went wrong", page.View().Message)
}

func TestPageRetry(t *testing.T) {
	var inputs []string
	page := echoPage(func(ctx context.Context, in string) (string, error) {
		inputs = append(inputs, in)
		return "", errors.New("Failed to fetch news")
	})

	_, err := page.Retry(context.Background())
	assert.ErrorIs(t, err, ErrBlankInput)

	_, _ = page.Submit(context.Background(), "tsla")
	_, _ = page.Retry(context.Background())

	assert.Equal(t, []string{"TSLA", "TSLA"}, inputs)
	assert.Equal(t, uint64(2), page.View().Seq)
}

func TestPageStaleResponseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	page := echoPage(func(ctx context.Context, in string) (string, error) {
		if in == "SLOW" {
			close(started)
			<-release
			return "slow result", nil
		}
		return "fast result", nil
	})

	type outcome struct {
		out string
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		out, err := page.Submit(context.Background(), "slow")
		done <- outcome{out, err}
	}()

	<-started
	out, err := page.Submit(context.Background(), "fast")
	require.NoError(t, err)
	assert.Equal(t, "fast result", out)

	close(release)
	stale := <-done
	assert.ErrorIs(t, stale.err, ErrSuperseded)
	assert.Empty(t, stale.out)

	view := page.View()
	assert.Equal(t, StatusSuccess, view.Status)
	assert.Equal(t, "FAST", view.Input)
	assert.Equal(t, "fast result", view.Result)
	assert.Equal(t, uint64(2), view.Seq)
}

func TestPageSupersededRequestIsCancelled(t *testing.T) {
	started := make(chan struct{})
	page := echoPage(func(ctx context.Context, in string) (string, error) {
		if in == "SLOW" {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		}
		return in, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := page.Submit(context.Background(), "slow")
		done <- err
	}()

	<-started
	_, err := page.Submit(context.Background(), "fast")
	require.NoError(t, err)

	assert.ErrorIs(t, <-done, ErrSuperseded)
	assert.Equal(t, StatusSuccess, page.View().Status)
}

func TestPageDismissError(t *testing.T) {
	page := echoPage(func(ctx context.Context, in string) (string, error) {
		return "", errors.New("Failed to compare stocks")
	})

	_, _ = page.Submit(context.Background(), "AAPL")
	require.Equal(t, StatusFailure, page.View().Status)

	page.DismissError()
	view := page.View()
	assert.Equal(t, StatusIdle, view.Status)
	assert.Empty(t, view.Message)
}

func TestPageFailureLogsFetchErrorKindAndStatus(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	page := NewPage("test", "Something went wrong", normalizeSymbol, func(ctx context.Context, in string) (string, error) {
		return "", notFound("Failed to fetch stock data")
	}, &logger.Logger{Logger: zap.New(core)})

	_, err := page.Submit(context.Background(), "aapl")
	require.Error(t, err)

	entries := logs.FilterMessage("Page request failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Failed to fetch stock data", fields["error"])
	assert.Equal(t, repository.KindHTTPStatus.String(), fields["kind"])
	assert.EqualValues(t, 404, fields["status_code"])
	assert.Equal(t, "Failed to fetch stock data (http_status 404)", fields["detail"])
}
