package common

const (
	APIBasePath = "/api"

	PathStock        = APIBasePath + "/stock/%s"
	PathStockHistory = APIBasePath + "/stock/%s/history"
	PathPredict      = APIBasePath + "/predict/%s"
	PathNews         = APIBasePath + "/news/%s"
	PathCompare      = APIBasePath + "/compare"

	QueryRange   = "range"
	QuerySymbol1 = "symbol1"
	QuerySymbol2 = "symbol2"
)

// Fixed messages surfaced to the user when a request fails.
const (
	MessageFetchStock        = "Failed to fetch stock data"
	MessageFetchHistory      = "Failed to fetch stock history"
	MessageFetchPrediction   = "Failed to fetch prediction"
	MessageFetchNews         = "Failed to fetch news"
	MessageCompareStocks     = "Failed to compare stocks"
	MessageGeneratePredict   = "Failed to generate prediction"
	MessageFetchHistorical   = "Failed to fetch historical data"
	MessageStockNotFound     = "Stock not found"
	MessageUnableToPredict   = "Unable to generate prediction"
	MessageBothSymbolsNeeded = "Both symbol1 and symbol2 required"
	MessageStocksNotFound    = "One or both stocks not found"
)
