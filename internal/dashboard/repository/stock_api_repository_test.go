package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stocksight/internal/dashboard/config"
	"stocksight/internal/dashboard/dto"
	"stocksight/internal/entity"
	pkgconfig "stocksight/pkg/config"
	"stocksight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) StockAPIRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{API: pkgconfig.API{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}}
	return NewStockAPIRepository(cfg, logger.NewNop())
}

func TestGetStock(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/stock/AAPL", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"AAPL","name":"Apple Inc.","price":182.45,"open":179.2,"close":182.45,
			"high":183,"low":178.9,"volume":52847392,"marketCap":2847392847392,"change":3.25,"changePercent":1.81,
			"lastUpdated":"2024-02-05T14:03:09"}`))
	})

	stock, err := repo.GetStock(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", stock.Symbol)
	assert.Equal(t, 182.45, stock.Price)
	assert.Equal(t, int64(52847392), stock.Volume)
	assert.Equal(t, 1.81, stock.ChangePercent)
}

func TestGetStockHistoryDefaultsRange(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/MSFT/history", r.URL.Path)
		assert.Equal(t, "1M", r.URL.Query().Get("range"))
		_, _ = w.Write([]byte(`[{"date":"Jan 1","price":175,"ma10":173,"ma50":170},{"date":"Jan 8","price":178}]`))
	})

	points, err := repo.GetStockHistory(context.Background(), "MSFT", "")
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.NotNil(t, points[0].MA10)
	assert.Equal(t, 173.0, *points[0].MA10)
	assert.Nil(t, points[0].MA200)
	assert.Nil(t, points[1].MA10)
}

func TestGetStockHistoryPassesRange(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5Y", r.URL.Query().Get("range"))
		_, _ = w.Write([]byte(`[]`))
	})

	points, err := repo.GetStockHistory(context.Background(), "MSFT", dto.Range5Y)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestCompareStocksQuery(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/compare", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol1"))
		assert.Equal(t, "GOOGL", r.URL.Query().Get("symbol2"))
		_, _ = w.Write([]byte(`{"symbol1":{"symbol":"AAPL"},"symbol2":{"symbol":"GOOGL"},
			"chartData":[{"date":"2024-01-02","price1":185.6,"price2":138.2}],
			"comparison":{"sevenDayChange1":2.85,"sevenDayChange2":2.96,"oneMonthTrend1":"Upward",
			"oneMonthTrend2":"Upward","marketCapDiff":1100000000000}}`))
	})

	data, err := repo.CompareStocks(context.Background(), "AAPL", "GOOGL")
	require.NoError(t, err)
	assert.Equal(t, "GOOGL", data.Symbol2.Symbol)
	assert.Equal(t, 2.96, data.Comparison.SevenDayChange2)
	require.Len(t, data.ChartData, 1)
	assert.Equal(t, 138.2, data.ChartData[0].Price2)
}

func TestGetNewsAndPrediction(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/news/TSLA":
			_, _ = w.Write([]byte(`[{"id":"1","title":"t","sentiment":"negative","publishedAt":"1 day ago"}]`))
		case "/api/predict/TSLA":
			_, _ = w.Write([]byte(`{"symbol":"TSLA","actual":[{"date":"d1","price":1}],"predicted":[{"date":"d2","price":2}],
				"confidenceInterval":[{"date":"d2","lower":1.5,"upper":2.5}],"insight":"x","expectedGrowth":3.1,"volatility":2.2}`))
		default:
			http.NotFound(w, r)
		}
	})

	articles, err := repo.GetNews(context.Background(), "TSLA")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, entity.SentimentNegative, articles[0].Sentiment)

	prediction, err := repo.GetPrediction(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.Equal(t, 3.1, prediction.ExpectedGrowth)
	require.Len(t, prediction.ConfidenceInterval, 1)
	assert.Equal(t, 2.5, prediction.ConfidenceInterval[0].Upper)
}

func TestNonSuccessStatusYieldsFixedMessage(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Stock not found"}`))
	})

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"stock", func() error { _, err := repo.GetStock(context.Background(), "ZZZZ"); return err }, "Failed to fetch stock data"},
		{"history", func() error { _, err := repo.GetStockHistory(context.Background(), "ZZZZ", dto.Range1Y); return err }, "Failed to fetch stock history"},
		{"predict", func() error { _, err := repo.GetPrediction(context.Background(), "ZZZZ"); return err }, "Failed to fetch prediction"},
		{"news", func() error { _, err := repo.GetNews(context.Background(), "ZZZZ"); return err }, "Failed to fetch news"},
		{"compare", func() error { _, err := repo.CompareStocks(context.Background(), "A", "B"); return err }, "Failed to compare stocks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			var fetchErr *FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, KindHTTPStatus, fetchErr.Kind)
			assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
		})
	}
}

func TestDecodeFailure(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := repo.GetStock(context.Background(), "AAPL")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, KindDecode, fetchErr.Kind)
	assert.Equal(t, "Failed to fetch stock data", err.Error())
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	repo := NewStockAPIRepository(&config.Config{API: pkgconfig.API{BaseURL: baseURL}}, logger.NewNop())
	_, err := repo.GetNews(context.Background(), "AAPL")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, KindNetwork, fetchErr.Kind)
	assert.Equal(t, "Failed to fetch news", err.Error())
	assert.Contains(t, fetchErr.Detail(), "network")
}

func TestCancelledContext(t *testing.T) {
	var calls atomic.Int32
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetStock(ctx, "AAPL")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls.Load())
}

func TestSymbolIsPathEscaped(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/BRK%2FB", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"symbol":"BRK/B"}`))
	})

	stock, err := repo.GetStock(context.Background(), "BRK/B")
	require.NoError(t, err)
	assert.Equal(t, "BRK/B", stock.Symbol)
}
