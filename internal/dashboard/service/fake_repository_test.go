package service

import (
	"context"
	"net/http"
	"sync/atomic"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/repository"
	"stocksight/internal/entity"
	"stocksight/pkg/common"
)

// fakeRepository lets each test script the backend per operation.
type fakeRepository struct {
	calls atomic.Int32

	getStock        func(ctx context.Context, symbol string) (*entity.StockData, error)
	getStockHistory func(ctx context.Context, symbol string, r dto.Range) ([]entity.ChartDataPoint, error)
	getPrediction   func(ctx context.Context, symbol string) (*entity.PredictionData, error)
	getNews         func(ctx context.Context, symbol string) ([]entity.NewsArticle, error)
	compareStocks   func(ctx context.Context, symbol1, symbol2 string) (*entity.ComparisonData, error)
}

var _ repository.StockAPIRepository = (*fakeRepository)(nil)

func (f *fakeRepository) GetStock(ctx context.Context, symbol string) (*entity.StockData, error) {
	f.calls.Add(1)
	return f.getStock(ctx, symbol)
}

func (f *fakeRepository) GetStockHistory(ctx context.Context, symbol string, r dto.Range) ([]entity.ChartDataPoint, error) {
	f.calls.Add(1)
	return f.getStockHistory(ctx, symbol, r)
}

func (f *fakeRepository) GetPrediction(ctx context.Context, symbol string) (*entity.PredictionData, error) {
	f.calls.Add(1)
	return f.getPrediction(ctx, symbol)
}

func (f *fakeRepository) GetNews(ctx context.Context, symbol string) ([]entity.NewsArticle, error) {
	f.calls.Add(1)
	return f.getNews(ctx, symbol)
}

func (f *fakeRepository) CompareStocks(ctx context.Context, symbol1, symbol2 string) (*entity.ComparisonData, error) {
	f.calls.Add(1)
	return f.compareStocks(ctx, symbol1, symbol2)
}

func notFound(message string) error {
	return &repository.FetchError{Kind: repository.KindHTTPStatus, StatusCode: http.StatusNotFound, Message: message}
}

func sampleStock(symbol string) *entity.StockData {
	return &entity.StockData{
		Symbol:        symbol,
		Name:          symbol + " Company",
		Price:         182.45,
		Open:          179.20,
		Close:         182.45,
		Volume:        52847392,
		MarketCap:     2847392847392,
		Change:        3.25,
		ChangePercent: 1.81,
	}
}

func sampleHistory() []entity.ChartDataPoint {
	return []entity.ChartDataPoint{
		{Date: "Jan 1", Price: 175},
		{Date: "Jan 8", Price: 178},
		{Date: "Jan 15", Price: 176},
	}
}

func stockOK(ctx context.Context, symbol string) (*entity.StockData, error) {
	return sampleStock(symbol), nil
}

func historyOK(ctx context.Context, symbol string, r dto.Range) ([]entity.ChartDataPoint, error) {
	return sampleHistory(), nil
}

func stockNotFound(ctx context.Context, symbol string) (*entity.StockData, error) {
	return nil, notFound(common.MessageFetchStock)
}
