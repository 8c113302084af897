package entity

// ComparisonChartPoint pairs the prices of two stocks on one date.
type ComparisonChartPoint struct {
	Date   string  `json:"date"`
	Price1 float64 `json:"price1"`
	Price2 float64 `json:"price2"`
}

// ComparisonMetrics are the scalar metrics of a side-by-side comparison.
type ComparisonMetrics struct {
	SevenDayChange1 float64 `json:"sevenDayChange1"`
	SevenDayChange2 float64 `json:"sevenDayChange2"`
	OneMonthTrend1  string  `json:"oneMonthTrend1"`
	OneMonthTrend2  string  `json:"oneMonthTrend2"`
	MarketCapDiff   float64 `json:"marketCapDiff"`
}

// ComparisonData is the backend's comparison of two stocks.
type ComparisonData struct {
	Symbol1    StockData              `json:"symbol1"`
	Symbol2    StockData              `json:"symbol2"`
	ChartData  []ComparisonChartPoint `json:"chartData"`
	Comparison ComparisonMetrics      `json:"comparison"`
}
