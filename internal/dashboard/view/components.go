package view

import (
	"fmt"
	"math"
	"strings"

	"stocksight/internal/entity"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// StockCard renders the compact card used for recent stocks.
func StockCard(s entity.StockData, selected bool) string {
	positive := s.IsPositive()
	arrow := "▲"
	if !positive {
		arrow = "▼"
	}

	var b strings.Builder
	b.WriteString(symbolStyle.Render(s.Symbol) + " " + signStyle(positive).Render(arrow) + "\n")
	b.WriteString(labelStyle.Render(s.Name) + "\n")
	b.WriteString(valueStyle.Render(FormatPrice(s.Price)) + "\n")
	b.WriteString(signStyle(positive).Render(FormatChange(s.Change, s.ChangePercent)))

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(b.String())
}

// StatCard renders a labelled single value.
func StatCard(label, value string) string {
	return cardStyle.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}

// ErrorMessage renders the error banner. retryHint is appended when non-empty.
func ErrorMessage(message, retryHint string) string {
	text := "✖ " + message
	if retryHint != "" {
		text += "  " + subtitleStyle.Render(retryHint)
	}
	return errorStyle.Render(text)
}

// NewLoadingSpinner returns the spinner shown while a page is loading.
func NewLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	return s
}

// LoadingSpinner renders one spinner frame with a caption.
func LoadingSpinner(frame, caption string) string {
	return frame + " " + subtitleStyle.Render(caption)
}

// EmptyState renders the hint shown before the first submission.
func EmptyState(hint string) string {
	return emptyStyle.Render(hint)
}

// ChartContainer frames a chart body with a title and subtitle.
func ChartContainer(title, subtitle, body string) string {
	content := titleStyle.Render(title)
	if subtitle != "" {
		content += "\n" + subtitleStyle.Render(subtitle)
	}
	return cardStyle.Render(content + "\n\n" + body)
}

// Sparkline renders values as a single line of block characters, at most
// width runes wide. Longer series are downsampled by averaging buckets.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	values = downsample(values, width)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	for _, v := range values {
		idx := len(sparkBlocks) / 2
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// PriceChart renders a sparkline with its min and max labels.
func PriceChart(values []float64, width int) string {
	if len(values) == 0 {
		return EmptyState("No data")
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return fmt.Sprintf("%s\n%s",
		chartStyle.Render(Sparkline(values, width)),
		labelStyle.Render(fmt.Sprintf("low %s  high %s  points %d", FormatPrice(lo), FormatPrice(hi), len(values))),
	)
}

func downsample(values []float64, width int) []float64 {
	if len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := range out {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
