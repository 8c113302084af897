package entity

// ConfidenceBand bounds a predicted price on a given date.
type ConfidenceBand struct {
	Date  string  `json:"date" yaml:"date"`
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// PredictionData is the backend's forecast for a symbol.
type PredictionData struct {
	Symbol             string           `json:"symbol" yaml:"symbol"`
	Actual             []ChartDataPoint `json:"actual" yaml:"actual"`
	Predicted          []ChartDataPoint `json:"predicted" yaml:"predicted"`
	ConfidenceInterval []ConfidenceBand `json:"confidenceInterval" yaml:"confidenceInterval"`
	Insight            string           `json:"insight" yaml:"insight"`
	ExpectedGrowth     float64          `json:"expectedGrowth" yaml:"expectedGrowth"`
	Volatility         float64          `json:"volatility" yaml:"volatility"`
}
