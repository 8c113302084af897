package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/repository"
	"stocksight/internal/entity"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"
)

var csvHeader = []string{"Date", "Price", "MA10", "MA50", "MA200"}

// HistoricalService drives the historical page and its CSV export.
type HistoricalService struct {
	*Page[dto.HistoryParam, dto.HistoryResult]
	repo repository.StockAPIRepository
	log  *logger.Logger
}

// NewHistoricalService creates the historical page.
func NewHistoricalService(repo repository.StockAPIRepository, log *logger.Logger) *HistoricalService {
	s := &HistoricalService{repo: repo, log: log}
	s.Page = NewPage("historical", common.MessageFetchHistorical, normalizeHistoryParam, s.fetch, log)
	return s
}

func normalizeHistoryParam(in dto.HistoryParam) (dto.HistoryParam, error) {
	symbol, err := normalizeSymbol(in.Symbol)
	if err != nil {
		return in, err
	}
	rng, err := dto.ParseRange(string(in.Range))
	if err != nil {
		return in, err
	}
	return dto.HistoryParam{Symbol: symbol, Range: rng}, nil
}

func (s *HistoricalService) fetch(ctx context.Context, in dto.HistoryParam) (dto.HistoryResult, error) {
	points, err := s.repo.GetStockHistory(ctx, in.Symbol, in.Range)
	if err != nil {
		return dto.HistoryResult{}, err
	}
	return dto.HistoryResult{Symbol: in.Symbol, Range: in.Range, Points: points}, nil
}

// ExportCSV writes the currently displayed series to w. It writes nothing
// and returns false when there is no data.
func (s *HistoricalService) ExportCSV(w io.Writer) (bool, error) {
	view := s.View()
	if !view.HasResult || len(view.Result.Points) == 0 {
		return false, nil
	}
	content, err := HistoryCSV(view.Result.Points)
	if err != nil {
		return false, err
	}
	if _, err := io.WriteString(w, content); err != nil {
		return false, err
	}
	return true, nil
}

// SaveCSV writes the displayed series into dir under CSVFilename. It returns
// the written path, or "" when there was nothing to export.
func (s *HistoricalService) SaveCSV(dir string) (string, error) {
	view := s.View()
	if !view.HasResult || len(view.Result.Points) == 0 {
		return "", nil
	}

	content, err := HistoryCSV(view.Result.Points)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, CSVFilename(view.Result.Symbol, view.Result.Range))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write csv export: %w", err)
	}
	s.log.Info("Historical data exported",
		logger.StringField("path", path),
		logger.IntField("rows", len(view.Result.Points)),
	)
	return path, nil
}

// HistoryCSV serializes points as Date,Price,MA10,MA50,MA200 rows joined by
// "\n" with no trailing newline. Absent moving averages are empty fields.
func HistoryCSV(points []entity.ChartDataPoint) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			p.Date,
			formatNumber(p.Price),
			formatOptional(p.MA10),
			formatOptional(p.MA50),
			formatOptional(p.MA200),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// CSVFilename is the export file name for symbol and range.
func CSVFilename(symbol string, rng dto.Range) string {
	return fmt.Sprintf("%s_%s_history.csv", symbol, rng)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}
