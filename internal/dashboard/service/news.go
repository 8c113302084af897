package service

import (
	"context"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/repository"
	"stocksight/internal/entity"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"
)

// Tone is the color family of a sentiment badge.
type Tone string

const (
	ToneGreen   Tone = "green"
	ToneRed     Tone = "red"
	ToneNeutral Tone = "neutral"
)

// Badge is how a sentiment is displayed. Tone selects the badge's color
// classes in the view layer.
type Badge struct {
	Tone Tone
	Icon string
}

// NewsService drives the news page.
type NewsService struct {
	*Page[string, dto.NewsResult]
	repo repository.StockAPIRepository
}

// NewNewsService creates the news page.
func NewNewsService(repo repository.StockAPIRepository, log *logger.Logger) *NewsService {
	s := &NewsService{repo: repo}
	s.Page = NewPage("news", common.MessageFetchNews, normalizeSymbol, s.fetch, log)
	return s
}

func (s *NewsService) fetch(ctx context.Context, symbol string) (dto.NewsResult, error) {
	articles, err := s.repo.GetNews(ctx, symbol)
	if err != nil {
		return dto.NewsResult{}, err
	}
	return dto.NewsResult{Symbol: symbol, Articles: articles}, nil
}

// SentimentBadge maps a sentiment to its badge. Anything other than the
// exact positive/negative values is shown as neutral.
func SentimentBadge(sentiment entity.Sentiment) Badge {
	switch sentiment {
	case entity.SentimentPositive:
		return Badge{Tone: ToneGreen, Icon: "🟢"}
	case entity.SentimentNegative:
		return Badge{Tone: ToneRed, Icon: "🔴"}
	default:
		return Badge{Tone: ToneNeutral, Icon: "⚪"}
	}
}
