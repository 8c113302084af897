package view

import (
	"fmt"
	"strings"

	"stocksight/internal/dashboard/dto"
	"stocksight/internal/dashboard/service"
	"stocksight/internal/entity"
	"stocksight/pkg/utils"

	"github.com/charmbracelet/lipgloss"
)

const retryHint = "ctrl+r to retry, esc to dismiss"

// Frame carries what every page needs besides its result.
type Frame struct {
	Status       service.Status
	Message      string
	SpinnerFrame string
	// Interactive adds the retry hint to error banners.
	Interactive bool
	Width       int
}

// RenderPage renders the shared loading/error/empty states and delegates to
// body once a result is available.
func RenderPage(f Frame, hasResult bool, emptyHint string, body func() string) string {
	switch {
	case f.Status == service.StatusLoading:
		return LoadingSpinner(f.SpinnerFrame, "Loading...")
	case f.Status == service.StatusFailure:
		hint := ""
		if f.Interactive {
			hint = retryHint
		}
		return ErrorMessage(f.Message, hint)
	case hasResult:
		return body()
	default:
		return EmptyState(emptyHint)
	}
}

func chartWidth(width int) int {
	if width <= 10 {
		return 60
	}
	return width - 6
}

// RenderHome renders the stock overview with its one-month chart.
func RenderHome(r dto.HomeResult, width int) string {
	s := r.Stock
	positive := s.IsPositive()

	header := lipgloss.JoinVertical(lipgloss.Left,
		symbolStyle.Render(s.Symbol)+"  "+labelStyle.Render(s.Name),
		valueStyle.Render(FormatPrice(s.Price))+"  "+signStyle(positive).Render(FormatChange(s.Change, s.ChangePercent)),
		labelStyle.Render("Last updated "+utils.PrettyTimestamp(s.LastUpdated)),
	)

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		StatCard("Open", FormatPrice(s.Open)),
		StatCard("High", FormatPrice(s.High)),
		StatCard("Low", FormatPrice(s.Low)),
		StatCard("Volume", FormatVolume(s.Volume)),
		StatCard("Market Cap", FormatMarketCap(s.MarketCap)),
	)

	chart := ChartContainer("Price Chart (1M)", "Trend: "+r.Trend,
		PriceChart(entity.Prices(r.History), chartWidth(width)))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", stats, "", chart)
}

// RenderRecent renders the recent stock cards, highlighting selected.
// selected < 0 highlights nothing.
func RenderRecent(stocks []entity.StockData, selected int) string {
	if len(stocks) == 0 {
		return ""
	}
	cards := make([]string, len(stocks))
	for i, s := range stocks {
		cards[i] = StockCard(s, i == selected)
	}
	return titleStyle.Render("Recent") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// RenderPrediction renders the forecast chart and its metrics.
func RenderPrediction(r dto.PredictionResult, width int) string {
	p := r.Prediction
	w := chartWidth(width)

	// One scale for both segments; the forecast part is drawn in its own color.
	spark := []rune(Sparkline(entity.Prices(r.Series), w))
	split := len(spark)
	if len(r.Series) > 0 {
		split = len(spark) * len(p.Actual) / len(r.Series)
	}
	line := chartStyle.Render(string(spark[:split])) + forecastStyle.Render(string(spark[split:]))

	var bands []string
	for _, b := range p.ConfidenceInterval {
		bands = append(bands, fmt.Sprintf("%s  %s to %s", b.Date, FormatPrice(b.Lower), FormatPrice(b.Upper)))
	}

	chart := ChartContainer(p.Symbol+" Forecast", "actual then predicted", line)
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		StatCard("Expected Growth", FormatChangePercent(p.ExpectedGrowth)),
		StatCard("Volatility", FormatPercent(p.Volatility)),
		StatCard("Points", fmt.Sprintf("%d", len(r.Series))),
	)

	parts := []string{chart, "", stats}
	if len(bands) > 0 {
		parts = append(parts, "", titleStyle.Render("Confidence Interval"), strings.Join(bands, "\n"))
	}
	if p.Insight != "" {
		parts = append(parts, "", insightStyle.Render(p.Insight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderHistory renders the historical chart and its table.
func RenderHistory(r dto.HistoryResult, width int) string {
	if len(r.Points) == 0 {
		return ChartContainer(r.Symbol+" History", "Range "+r.Range.String(), EmptyState("No data"))
	}

	chart := ChartContainer(r.Symbol+" History", "Range "+r.Range.String(),
		PriceChart(entity.Prices(r.Points), chartWidth(width)))

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s %10s %10s %10s %10s", "Date", "Price", "MA10", "MA50", "MA200")))
	for _, p := range tail(r.Points, 10) {
		fmt.Fprintf(&b, "\n%-14s %10s %10s %10s %10s",
			p.Date, FormatPrice(p.Price), optionalPrice(p.MA10), optionalPrice(p.MA50), optionalPrice(p.MA200))
	}
	return lipgloss.JoinVertical(lipgloss.Left, chart, "", b.String())
}

// RenderComparison renders both snapshots, the metrics and the verdict.
func RenderComparison(r dto.ComparisonResult, width int) string {
	c := r.Comparison
	m := c.Comparison

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		StockCard(c.Symbol1, r.Recommendation.Winner == c.Symbol1.Symbol),
		StockCard(c.Symbol2, r.Recommendation.Winner == c.Symbol2.Symbol),
	)

	p1 := make([]float64, len(c.ChartData))
	p2 := make([]float64, len(c.ChartData))
	for i, pt := range c.ChartData {
		p1[i], p2[i] = pt.Price1, pt.Price2
	}
	w := chartWidth(width)
	chart := ChartContainer("Price Comparison (1M)", "",
		symbolStyle.Render(fmt.Sprintf("%-6s", c.Symbol1.Symbol))+" "+chartStyle.Render(Sparkline(p1, w-7))+"\n"+
			symbolStyle.Render(fmt.Sprintf("%-6s", c.Symbol2.Symbol))+" "+forecastStyle.Render(Sparkline(p2, w-7)))

	metrics := lipgloss.JoinHorizontal(lipgloss.Top,
		StatCard("7D "+c.Symbol1.Symbol, signStyle(m.SevenDayChange1 >= 0).Render(FormatChangePercent(m.SevenDayChange1))),
		StatCard("7D "+c.Symbol2.Symbol, signStyle(m.SevenDayChange2 >= 0).Render(FormatChangePercent(m.SevenDayChange2))),
		StatCard("1M "+c.Symbol1.Symbol, m.OneMonthTrend1),
		StatCard("1M "+c.Symbol2.Symbol, m.OneMonthTrend2),
		StatCard("Market Cap Diff", FormatMarketCap(m.MarketCapDiff)),
	)

	rec := r.Recommendation
	verdict := insightStyle.Render(valueStyle.Render(rec.Headline) + "\n" + rec.Detail + "\n" + labelStyle.Render(rec.Insight))

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", chart, "", metrics, "", verdict)
}

// RenderNews renders the article list with sentiment badges.
func RenderNews(r dto.NewsResult, width int) string {
	if len(r.Articles) == 0 {
		return EmptyState("No news for " + r.Symbol)
	}
	items := make([]string, 0, len(r.Articles))
	for _, a := range r.Articles {
		badge := service.SentimentBadge(a.Sentiment)
		label := string(a.Sentiment)
		if label == "" {
			label = string(entity.SentimentNeutral)
		}
		head := toneStyle(badge.Tone).Render(badge.Icon+" "+label) + "  " + valueStyle.Render(a.Title)
		meta := labelStyle.Render(a.Source + " · " + utils.PrettyTimestamp(a.PublishedAt))
		body := lipgloss.NewStyle().Width(chartWidth(width)).Render(a.Summary)
		items = append(items, lipgloss.JoinVertical(lipgloss.Left, head, meta, body, subtitleStyle.Render(a.URL)))
	}
	return strings.Join(items, "\n\n")
}

func optionalPrice(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatPrice(*v)
}

func tail[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
