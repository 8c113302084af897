package service

import (
	"context"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/repository"
	"stocksight/internal/entity"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	TrendUp   = "Uptrend"
	TrendDown = "Downtrend"
)

// HomeService drives the home page: a stock snapshot plus its one-month chart.
type HomeService struct {
	*Page[string, dto.HomeResult]
	repo   repository.StockAPIRepository
	recent *RecentStocks
}

// NewHomeService creates the home page. recent may be nil.
func NewHomeService(repo repository.StockAPIRepository, recent *RecentStocks, log *logger.Logger) *HomeService {
	s := &HomeService{repo: repo, recent: recent}
	s.Page = NewPage("home", common.MessageFetchStock, normalizeSymbol, s.fetch, log)
	if recent != nil {
		s.Page.onSuccess = func(_ string, out dto.HomeResult) {
			recent.Add(out.Stock)
		}
	}
	return s
}

// Recent lists the recently viewed stocks, most recent first.
func (s *HomeService) Recent() []entity.StockData {
	if s.recent == nil {
		return nil
	}
	return s.recent.List()
}

// fetch issues both requests concurrently and succeeds only if both do.
// The first failure cancels the other request and is returned as is.
func (s *HomeService) fetch(ctx context.Context, symbol string) (dto.HomeResult, error) {
	var (
		stock   *entity.StockData
		history []entity.ChartDataPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stock, err = s.repo.GetStock(gctx, symbol)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.repo.GetStockHistory(gctx, symbol, dto.Range1M)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.HomeResult{}, err
	}

	return dto.HomeResult{
		Stock:   *stock,
		History: history,
		Trend:   TrendLabel(stock.Change),
	}, nil
}

// TrendLabel maps a session change to the home page trend insight.
func TrendLabel(change float64) string {
	if change >= 0 {
		return TrendUp
	}
	return TrendDown
}
