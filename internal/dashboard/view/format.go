package view

import (
	"fmt"
	"strconv"
)

// FormatPrice formats a price as $X.XX.
func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// FormatSigned formats v with two decimals and a leading "+" iff v >= 0.
func FormatSigned(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	if v >= 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatChangePercent formats a percentage with a leading "+" iff v >= 0.
func FormatChangePercent(v float64) string {
	return FormatSigned(v) + "%"
}

// FormatChange renders the stock card change line, e.g. "+3.25 (+1.81%)".
func FormatChange(change, changePercent float64) string {
	return fmt.Sprintf("%s (%s)", FormatSigned(change), FormatChangePercent(changePercent))
}

// FormatVolume formats a share volume in millions, e.g. "52.8M".
func FormatVolume(v int64) string {
	return fmt.Sprintf("%.1fM", float64(v)/1e6)
}

// FormatMarketCap formats a market capitalization in trillions, e.g. "$2.85T".
func FormatMarketCap(v float64) string {
	return fmt.Sprintf("$%.2fT", v/1e12)
}

// FormatPercent formats a plain percentage using the shortest representation.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
