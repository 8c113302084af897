package dto

import "stocksight/internal/entity"

// HistoryParam is the input of the historical page.
type HistoryParam struct {
	Symbol string
	Range  Range
}

// CompareParam is the input of the compare page.
type CompareParam struct {
	Symbol1 string
	Symbol2 string
}

// HomeResult is what the home page shows once both of its requests succeed.
type HomeResult struct {
	Stock   entity.StockData
	History []entity.ChartDataPoint
	Trend   string
}

// PredictionResult is the prediction page result.
type PredictionResult struct {
	Prediction entity.PredictionData
	// Series is Actual followed by Predicted, the single line the chart draws.
	Series []entity.ChartDataPoint
}

// HistoryResult is the historical page result.
type HistoryResult struct {
	Symbol string
	Range  Range
	Points []entity.ChartDataPoint
}

// Recommendation is the compare page's verdict derived from 7-day changes.
type Recommendation struct {
	// Winner is empty on a tie.
	Winner   string
	Headline string
	Detail   string
	Insight  string
}

// ComparisonResult is the compare page result.
type ComparisonResult struct {
	Comparison     entity.ComparisonData
	Recommendation Recommendation
}

// NewsResult is the news page result.
type NewsResult struct {
	Symbol   string
	Articles []entity.NewsArticle
}
