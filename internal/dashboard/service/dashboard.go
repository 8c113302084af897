package service

import (
	"stocksight/internal/dashboard/repository"
	"stocksight/pkg/logger"
)

// Dashboard groups the page controllers of one dashboard session. Pages are
// independent; each keeps its own state.
type Dashboard struct {
	Home    *HomeService
	Predict *PredictService
	History *HistoricalService
	Compare *CompareService
	News    *NewsService
}

// NewDashboard wires every page to the same API repository.
func NewDashboard(repo repository.StockAPIRepository, recent *RecentStocks, log *logger.Logger) *Dashboard {
	return &Dashboard{
		Home:    NewHomeService(repo, recent, log),
		Predict: NewPredictService(repo, log),
		History: NewHistoricalService(repo, log),
		Compare: NewCompareService(repo, log),
		News:    NewNewsService(repo, log),
	}
}
