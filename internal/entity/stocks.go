package entity

// StockData is a point-in-time snapshot of a single stock.
type StockData struct {
	Symbol        string  `json:"symbol" yaml:"symbol"`
	Name          string  `json:"name" yaml:"name"`
	Price         float64 `json:"price" yaml:"price"`
	Open          float64 `json:"open" yaml:"open"`
	Close         float64 `json:"close" yaml:"close"`
	High          float64 `json:"high" yaml:"high"`
	Low           float64 `json:"low" yaml:"low"`
	Volume        int64   `json:"volume" yaml:"volume"`
	MarketCap     float64 `json:"marketCap" yaml:"marketCap"`
	Change        float64 `json:"change" yaml:"change"`
	ChangePercent float64 `json:"changePercent" yaml:"changePercent"`
	LastUpdated   string  `json:"lastUpdated" yaml:"lastUpdated"`
}

// IsPositive reports whether the stock is flat or up on the session.
func (s StockData) IsPositive() bool {
	return s.Change >= 0
}
