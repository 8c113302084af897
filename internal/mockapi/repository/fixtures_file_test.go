package repository

import (
	"context"
	"path/filepath"
	"testing"

	"stocksight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledFixtures(t *testing.T) {
	file, err := LoadFixtures(filepath.Join("..", "..", "..", "fixtures", "stocks.yaml"))
	require.NoError(t, err)

	repo, err := NewFixtureRepository(file, logger.NewNop())
	require.NoError(t, err)

	for _, symbol := range []string{"AAPL", "MSFT", "GOOGL", "TSLA"} {
		stock, err := repo.FindStock(context.Background(), symbol)
		require.NoError(t, err, symbol)
		assert.NotEmpty(t, stock.Name, symbol)

		history, err := repo.FindHistory(context.Background(), symbol)
		require.NoError(t, err, symbol)
		assert.NotEmpty(t, history, symbol)
	}
}
