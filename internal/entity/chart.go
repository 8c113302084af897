package entity

// ChartDataPoint is one sample of a price chart. Moving averages are nil when
// the backend had not enough history to compute them.
type ChartDataPoint struct {
	Date  string   `json:"date" yaml:"date"`
	Price float64  `json:"price" yaml:"price"`
	MA10  *float64 `json:"ma10,omitempty" yaml:"ma10,omitempty"`
	MA50  *float64 `json:"ma50,omitempty" yaml:"ma50,omitempty"`
	MA200 *float64 `json:"ma200,omitempty" yaml:"ma200,omitempty"`
}

// Prices extracts the price column of a chart series.
func Prices(points []ChartDataPoint) []float64 {
	prices := make([]float64, len(points))
	for i, p := range points {
		prices[i] = p.Price
	}
	return prices
}
