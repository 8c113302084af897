package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stocksight/internal/dashboard/config"
	"stocksight/internal/dashboard/dto"
	"stocksight/internal/entity"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultTimeout = 10 * time.Second

// StockAPIRepository is the client of the StockSight backend API.
type StockAPIRepository interface {
	GetStock(ctx context.Context, symbol string) (*entity.StockData, error)
	GetStockHistory(ctx context.Context, symbol string, r dto.Range) ([]entity.ChartDataPoint, error)
	GetPrediction(ctx context.Context, symbol string) (*entity.PredictionData, error)
	GetNews(ctx context.Context, symbol string) ([]entity.NewsArticle, error)
	CompareStocks(ctx context.Context, symbol1, symbol2 string) (*entity.ComparisonData, error)
}

type stockAPIRepository struct {
	baseURL        string
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	maxPerMinute   int
}

// NewStockAPIRepository creates a client for cfg.API.BaseURL. A zero
// max_request_per_minute disables client-side rate limiting.
func NewStockAPIRepository(cfg *config.Config, log *logger.Logger) StockAPIRepository {
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	requestLimiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.API.MaxRequestPerMinute > 0 {
		secondsPerRequest := time.Minute / time.Duration(cfg.API.MaxRequestPerMinute)
		requestLimiter = rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	}

	return &stockAPIRepository{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		log:     log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requestLimiter: requestLimiter,
		maxPerMinute:   cfg.API.MaxRequestPerMinute,
	}
}

// GetStock fetches the current snapshot of symbol.
func (r *stockAPIRepository) GetStock(ctx context.Context, symbol string) (*entity.StockData, error) {
	var stock entity.StockData
	path := fmt.Sprintf(common.PathStock, url.PathEscape(symbol))
	if err := r.getJSON(ctx, path, nil, common.MessageFetchStock, &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

// GetStockHistory fetches the chart series of symbol over the given range.
func (r *stockAPIRepository) GetStockHistory(ctx context.Context, symbol string, rng dto.Range) ([]entity.ChartDataPoint, error) {
	if rng == "" {
		rng = dto.DefaultRange
	}
	var points []entity.ChartDataPoint
	path := fmt.Sprintf(common.PathStockHistory, url.PathEscape(symbol))
	query := url.Values{common.QueryRange: []string{rng.String()}}
	if err := r.getJSON(ctx, path, query, common.MessageFetchHistory, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// GetPrediction fetches the forecast for symbol.
func (r *stockAPIRepository) GetPrediction(ctx context.Context, symbol string) (*entity.PredictionData, error) {
	var prediction entity.PredictionData
	path := fmt.Sprintf(common.PathPredict, url.PathEscape(symbol))
	if err := r.getJSON(ctx, path, nil, common.MessageFetchPrediction, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

// GetNews fetches the articles related to symbol.
func (r *stockAPIRepository) GetNews(ctx context.Context, symbol string) ([]entity.NewsArticle, error) {
	var articles []entity.NewsArticle
	path := fmt.Sprintf(common.PathNews, url.PathEscape(symbol))
	if err := r.getJSON(ctx, path, nil, common.MessageFetchNews, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// CompareStocks fetches the side-by-side comparison of two symbols.
func (r *stockAPIRepository) CompareStocks(ctx context.Context, symbol1, symbol2 string) (*entity.ComparisonData, error) {
	var comparison entity.ComparisonData
	query := url.Values{
		common.QuerySymbol1: []string{symbol1},
		common.QuerySymbol2: []string{symbol2},
	}
	if err := r.getJSON(ctx, common.PathCompare, query, common.MessageCompareStocks, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

func (r *stockAPIRepository) getJSON(ctx context.Context, path string, query url.Values, message string, out interface{}) error {
	endpoint := r.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	fields := []zap.Field{
		zap.String("url", endpoint),
		zap.Int("max_request_per_minute", r.maxPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return &FetchError{Kind: KindNetwork, Message: message, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return &FetchError{Kind: KindNetwork, Message: message, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to stock API", fields...)
		return &FetchError{Kind: KindNetwork, Message: message, Err: err}
	}
	defer resp.Body.Close()

	fields = append(fields, zap.Int("status_code", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		r.log.ErrorContext(ctx, "Received non-OK response from stock API", fields...)
		return &FetchError{
			Kind:       KindHTTPStatus,
			StatusCode: resp.StatusCode,
			Message:    message,
			Err:        fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to decode response body from stock API", fields...)
		return &FetchError{Kind: KindDecode, StatusCode: resp.StatusCode, Message: message, Err: err}
	}

	r.log.DebugContext(ctx, "Stock API request succeeded", fields...)
	return nil
}
