package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"stocksight/internal/entity"
	"stocksight/pkg/logger"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when the fixture file has no entry for a symbol.
var ErrNotFound = errors.New("fixture not found")

const seriesDateLayout = "2006-01-02"

// SeriesSpec describes a generated daily close series: a seeded random walk
// over the trading days ending at EndDate.
type SeriesSpec struct {
	EndDate    string  `yaml:"end_date"`
	Days       int     `yaml:"days"`
	Start      float64 `yaml:"start"`
	Drift      float64 `yaml:"drift"`
	Volatility float64 `yaml:"volatility"`
	Seed       uint64  `yaml:"seed"`
}

// StockFixture is everything the backend knows about one symbol. History
// takes precedence over Series when both are set.
type StockFixture struct {
	Stock      entity.StockData        `yaml:"stock"`
	History    []entity.ChartDataPoint `yaml:"history"`
	Series     *SeriesSpec             `yaml:"series"`
	Prediction *entity.PredictionData  `yaml:"prediction"`
	News       []entity.NewsArticle    `yaml:"news"`
}

// FixtureFile is the top-level layout of the fixture YAML.
type FixtureFile struct {
	Stocks map[string]StockFixture `yaml:"stocks"`
}

// FixtureRepository reads stock fixtures. Symbols are case-insensitive.
type FixtureRepository interface {
	FindStock(ctx context.Context, symbol string) (*entity.StockData, error)
	FindHistory(ctx context.Context, symbol string) ([]entity.ChartDataPoint, error)
	FindPrediction(ctx context.Context, symbol string) (*entity.PredictionData, error)
	FindNews(ctx context.Context, symbol string) ([]entity.NewsArticle, error)
	HasPredictions() bool
}

type fixtureRepository struct {
	stocks map[string]StockFixture
}

// LoadFixtures reads and parses the fixture file at path.
func LoadFixtures(path string) (*FixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures parses fixture YAML.
func ParseFixtures(data []byte) (*FixtureFile, error) {
	var file FixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}
	return &file, nil
}

// NewFixtureRepository indexes file by upper-cased symbol and materializes
// generated series.
func NewFixtureRepository(file *FixtureFile, log *logger.Logger) (FixtureRepository, error) {
	stocks := make(map[string]StockFixture, len(file.Stocks))
	for key, fixture := range file.Stocks {
		symbol := strings.ToUpper(strings.TrimSpace(key))
		if fixture.Stock.Symbol == "" {
			fixture.Stock.Symbol = symbol
		}
		if fixture.Stock.Name == "" {
			fixture.Stock.Name = symbol
		}
		if len(fixture.History) == 0 && fixture.Series != nil {
			history, err := GenerateSeries(*fixture.Series)
			if err != nil {
				return nil, fmt.Errorf("fixture %s: %w", symbol, err)
			}
			fixture.History = history
		}
		stocks[symbol] = fixture

		log.Debug("Fixture loaded",
			logger.StringField("symbol", symbol),
			logger.IntField("history_points", len(fixture.History)),
			logger.IntField("news", len(fixture.News)),
			logger.Field("has_prediction", fixture.Prediction != nil),
		)
	}
	return &fixtureRepository{stocks: stocks}, nil
}

func (r *fixtureRepository) lookup(symbol string) (StockFixture, bool) {
	fixture, ok := r.stocks[strings.ToUpper(strings.TrimSpace(symbol))]
	return fixture, ok
}

func (r *fixtureRepository) FindStock(_ context.Context, symbol string) (*entity.StockData, error) {
	fixture, ok := r.lookup(symbol)
	if !ok {
		return nil, ErrNotFound
	}
	stock := fixture.Stock
	return &stock, nil
}

func (r *fixtureRepository) FindHistory(_ context.Context, symbol string) ([]entity.ChartDataPoint, error) {
	fixture, ok := r.lookup(symbol)
	if !ok {
		return nil, ErrNotFound
	}
	return append([]entity.ChartDataPoint(nil), fixture.History...), nil
}

func (r *fixtureRepository) FindPrediction(_ context.Context, symbol string) (*entity.PredictionData, error) {
	fixture, ok := r.lookup(symbol)
	if !ok || fixture.Prediction == nil {
		return nil, ErrNotFound
	}
	prediction := *fixture.Prediction
	if prediction.Symbol == "" {
		prediction.Symbol = fixture.Stock.Symbol
	}
	return &prediction, nil
}

func (r *fixtureRepository) FindNews(_ context.Context, symbol string) ([]entity.NewsArticle, error) {
	fixture, ok := r.lookup(symbol)
	if !ok || len(fixture.News) == 0 {
		return nil, ErrNotFound
	}
	return append([]entity.NewsArticle(nil), fixture.News...), nil
}

func (r *fixtureRepository) HasPredictions() bool {
	for _, fixture := range r.stocks {
		if fixture.Prediction != nil {
			return true
		}
	}
	return false
}

// GenerateSeries expands spec into daily closes, oldest first, skipping
// weekends. The same spec always yields the same series.
func GenerateSeries(spec SeriesSpec) ([]entity.ChartDataPoint, error) {
	end, err := time.Parse(seriesDateLayout, spec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid series end_date %q: %w", spec.EndDate, err)
	}
	if spec.Days <= 0 || spec.Start <= 0 {
		return nil, fmt.Errorf("series needs positive days and start, got %d and %v", spec.Days, spec.Start)
	}

	dates := make([]time.Time, 0, spec.Days)
	for d := end; len(dates) < spec.Days; d = d.AddDate(0, 0, -1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, d)
	}

	rng := rand.New(rand.NewPCG(spec.Seed, spec.Seed^0x9e3779b97f4a7c15))
	points := make([]entity.ChartDataPoint, spec.Days)
	price := spec.Start
	for i := range points {
		date := dates[len(dates)-1-i]
		if i > 0 {
			price *= 1 + spec.Drift + spec.Volatility*rng.NormFloat64()
			price = math.Max(price, 0.01)
		}
		points[i] = entity.ChartDataPoint{Date: date.Format(seriesDateLayout), Price: math.Round(price*100) / 100}
	}
	return points, nil
}
