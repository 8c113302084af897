package service

import (
	"context"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/repository"
	"stocksight/internal/entity"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"
)

// PredictService drives the prediction page.
type PredictService struct {
	*Page[string, dto.PredictionResult]
	repo repository.StockAPIRepository
}

// NewPredictService creates the prediction page.
func NewPredictService(repo repository.StockAPIRepository, log *logger.Logger) *PredictService {
	s := &PredictService{repo: repo}
	s.Page = NewPage("predict", common.MessageGeneratePredict, normalizeSymbol, s.fetch, log)
	return s
}

func (s *PredictService) fetch(ctx context.Context, symbol string) (dto.PredictionResult, error) {
	prediction, err := s.repo.GetPrediction(ctx, symbol)
	if err != nil {
		return dto.PredictionResult{}, err
	}
	return dto.PredictionResult{
		Prediction: *prediction,
		Series:     ForecastSeries(*prediction),
	}, nil
}

// ForecastSeries concatenates the actual and predicted points, in that order.
func ForecastSeries(p entity.PredictionData) []entity.ChartDataPoint {
	series := make([]entity.ChartDataPoint, 0, len(p.Actual)+len(p.Predicted))
	series = append(series, p.Actual...)
	return append(series, p.Predicted...)
}
