package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/repository"
	"stocksight/internal/entity"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"
)

// CompareService drives the compare page.
type CompareService struct {
	*Page[dto.CompareParam, dto.ComparisonResult]
	repo repository.StockAPIRepository
}

// NewCompareService creates the compare page.
func NewCompareService(repo repository.StockAPIRepository, log *logger.Logger) *CompareService {
	s := &CompareService{repo: repo}
	s.Page = NewPage("compare", common.MessageCompareStocks, normalizeCompareParam, s.fetch, log)
	return s
}

// Both symbols are required; either one blank rejects the submission.
func normalizeCompareParam(in dto.CompareParam) (dto.CompareParam, error) {
	s1, err := normalizeSymbol(in.Symbol1)
	if err != nil {
		return in, err
	}
	s2, err := normalizeSymbol(in.Symbol2)
	if err != nil {
		return in, err
	}
	return dto.CompareParam{Symbol1: s1, Symbol2: s2}, nil
}

func (s *CompareService) fetch(ctx context.Context, in dto.CompareParam) (dto.ComparisonResult, error) {
	data, err := s.repo.CompareStocks(ctx, in.Symbol1, in.Symbol2)
	if err != nil {
		return dto.ComparisonResult{}, err
	}
	return dto.ComparisonResult{
		Comparison:     *data,
		Recommendation: Recommend(*data),
	}, nil
}

// Recommend compares the two 7-day changes. The strictly greater one wins;
// equal changes give the neutral verdict.
func Recommend(data entity.ComparisonData) dto.Recommendation {
	c1, c2 := data.Comparison.SevenDayChange1, data.Comparison.SevenDayChange2
	s1, s2 := data.Symbol1.Symbol, data.Symbol2.Symbol

	switch {
	case c1 > c2:
		return winnerRecommendation(s1, c1, s2, c2)
	case c2 > c1:
		return winnerRecommendation(s2, c2, s1, c1)
	default:
		return dto.Recommendation{
			Headline: "⚖️ Both Stocks Show Similar Recent Performance",
			Detail:   "Both stocks have shown comparable performance in the last week, making this a balanced comparison.",
			Insight:  "Both stocks warrant further analysis for your investment goals",
		}
	}
}

func winnerRecommendation(winner string, winnerChange float64, other string, otherChange float64) dto.Recommendation {
	direction := "negative"
	if winnerChange > 0 {
		direction = "positive"
	}
	return dto.Recommendation{
		Winner:   winner,
		Headline: fmt.Sprintf("📈 %s Shows Stronger Momentum", winner),
		Detail: fmt.Sprintf("%s has performed better in the last 7 days with %s growth of %s%%, compared to %s's %s%%.",
			winner, direction, absNumber(winnerChange), other, absNumber(otherChange)),
		Insight: fmt.Sprintf("Consider %s for short-term opportunities", winner),
	}
}

func absNumber(v float64) string {
	return strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
}
