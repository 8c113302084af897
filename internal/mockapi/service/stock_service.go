package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"stocksight/internal/entity"
	"stocksight/internal/mockapi/dto"
	"stocksight/internal/mockapi/repository"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"
	"stocksight/pkg/utils"
)

var (
	ErrStockNotFound         = errors.New(common.MessageStockNotFound)
	ErrPredictionUnavailable = errors.New(common.MessageUnableToPredict)
	ErrMissingSymbols        = errors.New(common.MessageBothSymbolsNeeded)
	ErrStocksNotFound        = errors.New(common.MessageStocksNotFound)
)

const (
	trendUpward   = "Upward"
	trendDownward = "Downward"

	timestampLayout = "2006-01-02T15:04:05.000000"
)

// rangePoints is the number of trailing trading days each range serves.
// Zero means the whole series.
var rangePoints = map[string]int{
	"1M": 22,
	"6M": 126,
	"1Y": 252,
	"5Y": 0,
}

var movingAverageWindows = []int{10, 50, 200}

// StockService answers the dashboard API from fixtures.
type StockService interface {
	GetStock(ctx context.Context, symbol string) (*entity.StockData, error)
	GetHistory(ctx context.Context, symbol, rangeStr string) ([]entity.ChartDataPoint, error)
	GetPrediction(ctx context.Context, symbol string) (*entity.PredictionData, error)
	GetNews(ctx context.Context, symbol string) ([]entity.NewsArticle, error)
	Compare(ctx context.Context, symbol1, symbol2 string) (*entity.ComparisonData, error)
	Health(ctx context.Context) dto.HealthResponse
}

type stockService struct {
	repo repository.FixtureRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewStockService creates a StockService backed by repo.
func NewStockService(repo repository.FixtureRepository, log *logger.Logger) StockService {
	return &stockService{repo: repo, log: log, now: utils.TimeNowLocal}
}

func (s *stockService) GetStock(ctx context.Context, symbol string) (*entity.StockData, error) {
	stock, err := s.repo.FindStock(ctx, symbol)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrStockNotFound
	}
	if err != nil {
		return nil, err
	}
	if stock.LastUpdated == "" {
		stock.LastUpdated = s.now().Format(timestampLayout)
	}
	return stock, nil
}

// GetHistory returns the trailing window for rangeStr with moving averages
// filled in where the window holds enough points. Unknown ranges serve 1M;
// unknown symbols get an empty series.
func (s *stockService) GetHistory(ctx context.Context, symbol, rangeStr string) ([]entity.ChartDataPoint, error) {
	history, err := s.repo.FindHistory(ctx, symbol)
	if errors.Is(err, repository.ErrNotFound) {
		return []entity.ChartDataPoint{}, nil
	}
	if err != nil {
		return nil, err
	}

	n, ok := rangePoints[strings.ToUpper(rangeStr)]
	if !ok {
		s.log.Debug("Unknown range, serving 1M", logger.StringField("range", rangeStr))
		n = rangePoints["1M"]
	}
	if n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}
	return withMovingAverages(history), nil
}

func (s *stockService) GetPrediction(ctx context.Context, symbol string) (*entity.PredictionData, error) {
	prediction, err := s.repo.FindPrediction(ctx, symbol)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPredictionUnavailable
	}
	return prediction, err
}

// GetNews serves fixture articles, or two neutral demo articles pointing at
// Yahoo Finance when the symbol has none.
func (s *stockService) GetNews(ctx context.Context, symbol string) ([]entity.NewsArticle, error) {
	articles, err := s.repo.FindNews(ctx, symbol)
	if err == nil {
		return articles, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	symbol = strings.ToUpper(symbol)
	company := symbol
	if stock, err := s.repo.FindStock(ctx, symbol); err == nil {
		company = stock.Name
	}
	publishedAt := s.now().Format(timestampLayout)
	return []entity.NewsArticle{
		{
			ID:          "1",
			Title:       fmt.Sprintf("%s Stock Analysis - Market Update", symbol),
			Summary:     fmt.Sprintf("Latest market analysis and insights for %s.", symbol),
			Source:      "StockSight Demo",
			URL:         fmt.Sprintf("https://finance.yahoo.com/quote/%s/news", symbol),
			Sentiment:   entity.SentimentNeutral,
			PublishedAt: publishedAt,
		},
		{
			ID:          "2",
			Title:       fmt.Sprintf("%s - Recent Developments", company),
			Summary:     fmt.Sprintf("Read the latest news about %s on Yahoo Finance.", symbol),
			Source:      "Yahoo Finance",
			URL:         fmt.Sprintf("https://finance.yahoo.com/quote/%s", symbol),
			Sentiment:   entity.SentimentNeutral,
			PublishedAt: publishedAt,
		},
	}, nil
}

// Compare joins two snapshots with their one-month series. The chart uses
// the first series' dates and stops at the shorter one.
func (s *stockService) Compare(ctx context.Context, symbol1, symbol2 string) (*entity.ComparisonData, error) {
	if strings.TrimSpace(symbol1) == "" || strings.TrimSpace(symbol2) == "" {
		return nil, ErrMissingSymbols
	}

	stock1, err1 := s.GetStock(ctx, symbol1)
	stock2, err2 := s.GetStock(ctx, symbol2)
	if errors.Is(err1, ErrStockNotFound) || errors.Is(err2, ErrStockNotFound) {
		return nil, ErrStocksNotFound
	}
	if err := errors.Join(err1, err2); err != nil {
		return nil, err
	}

	hist1, err := s.GetHistory(ctx, symbol1, "1M")
	if err != nil {
		return nil, err
	}
	hist2, err := s.GetHistory(ctx, symbol2, "1M")
	if err != nil {
		return nil, err
	}

	chart := make([]entity.ComparisonChartPoint, min(len(hist1), len(hist2)))
	for i := range chart {
		chart[i] = entity.ComparisonChartPoint{Date: hist1[i].Date, Price1: hist1[i].Price, Price2: hist2[i].Price}
	}

	change1, change2 := stock1.ChangePercent, stock2.ChangePercent
	if len(hist1) >= 7 && len(hist2) >= 7 {
		change1 = sevenDayChange(hist1)
		change2 = sevenDayChange(hist2)
	}

	return &entity.ComparisonData{
		Symbol1:   *stock1,
		Symbol2:   *stock2,
		ChartData: chart,
		Comparison: entity.ComparisonMetrics{
			SevenDayChange1: round2(change1),
			SevenDayChange2: round2(change2),
			OneMonthTrend1:  trend(change1),
			OneMonthTrend2:  trend(change2),
			MarketCapDiff:   math.Abs(stock1.MarketCap - stock2.MarketCap),
		},
	}, nil
}

func (s *stockService) Health(_ context.Context) dto.HealthResponse {
	return dto.HealthResponse{
		Status:      "healthy",
		Timestamp:   s.now().Format(timestampLayout),
		ModelLoaded: s.repo.HasPredictions(),
	}
}

// sevenDayChange is the percent change from the 7th-from-last point to the
// last one.
func sevenDayChange(history []entity.ChartDataPoint) float64 {
	last := history[len(history)-1].Price
	base := history[len(history)-7].Price
	if base == 0 {
		return 0
	}
	return (last - base) / base * 100
}

func trend(change float64) string {
	if change > 0 {
		return trendUpward
	}
	return trendDownward
}

// withMovingAverages fills absent MA10/MA50/MA200 with the trailing mean of
// the window's closes. Points without a full window keep them absent.
func withMovingAverages(points []entity.ChartDataPoint) []entity.ChartDataPoint {
	out := make([]entity.ChartDataPoint, len(points))
	copy(out, points)

	for _, window := range movingAverageWindows {
		sum := 0.0
		for i := range out {
			sum += out[i].Price
			if i >= window {
				sum -= out[i-window].Price
			}
			if i+1 < window {
				continue
			}
			ma := maField(&out[i], window)
			if *ma == nil {
				*ma = utils.ToPointer(round2(sum / float64(window)))
			}
		}
	}
	return out
}

func maField(p *entity.ChartDataPoint, window int) **float64 {
	switch window {
	case 10:
		return &p.MA10
	case 50:
		return &p.MA50
	default:
		return &p.MA200
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
