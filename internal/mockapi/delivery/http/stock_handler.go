package http

import (
	"errors"
	"net/http"

	"stocksight/internal/mockapi/service"
	"stocksight/pkg/common"
	"stocksight/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles the dashboard API requests.
type StockHandler struct {
	stockService service.StockService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, logger: logger}
}

// RegisterRoutes registers the API routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stock/:symbol", h.GetStock)
	g.GET("/stock/:symbol/history", h.GetStockHistory)
	g.GET("/predict/:symbol", h.GetPrediction)
	g.GET("/news/:symbol", h.GetNews)
	g.GET("/compare", h.CompareStocks)
	g.GET("/health", h.Health)
}

// GetStock godoc
// @Summary Get a stock snapshot
// @Tags stocks
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} entity.StockData
// @Failure 404 {object} dto.ErrorResponse
// @Router /stock/{symbol} [get]
func (h *StockHandler) GetStock(c echo.Context) error {
	stock, err := h.stockService.GetStock(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, stock)
}

// GetStockHistory godoc
// @Summary Get the price history of a stock
// @Description Unknown ranges fall back to 1M. Unknown symbols yield an empty list.
// @Tags stocks
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Param range query string false "1M, 6M, 1Y or 5Y" default(1M)
// @Success 200 {array} entity.ChartDataPoint
// @Router /stock/{symbol}/history [get]
func (h *StockHandler) GetStockHistory(c echo.Context) error {
	rangeStr := c.QueryParam(common.QueryRange)
	if rangeStr == "" {
		rangeStr = "1M"
	}
	history, err := h.stockService.GetHistory(c.Request().Context(), c.Param("symbol"), rangeStr)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, history)
}

// GetPrediction godoc
// @Summary Get the price forecast of a stock
// @Tags predictions
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} entity.PredictionData
// @Failure 500 {object} dto.ErrorResponse
// @Router /predict/{symbol} [get]
func (h *StockHandler) GetPrediction(c echo.Context) error {
	prediction, err := h.stockService.GetPrediction(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, prediction)
}

// GetNews godoc
// @Summary Get news articles about a stock
// @Tags news
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {array} entity.NewsArticle
// @Router /news/{symbol} [get]
func (h *StockHandler) GetNews(c echo.Context) error {
	articles, err := h.stockService.GetNews(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, articles)
}

// CompareStocks godoc
// @Summary Compare two stocks
// @Tags stocks
// @Produce json
// @Param symbol1 query string true "First ticker symbol"
// @Param symbol2 query string true "Second ticker symbol"
// @Success 200 {object} entity.ComparisonData
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /compare [get]
func (h *StockHandler) CompareStocks(c echo.Context) error {
	comparison, err := h.stockService.Compare(c.Request().Context(),
		c.QueryParam(common.QuerySymbol1), c.QueryParam(common.QuerySymbol2))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, comparison)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *StockHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stockService.Health(c.Request().Context()))
}

func (h *StockHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrStockNotFound), errors.Is(err, service.ErrStocksNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrMissingSymbols):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrPredictionUnavailable):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	default:
		h.logger.Error("Request failed",
			logger.StringField("path", c.Path()),
			logger.ErrorField(err),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
}
