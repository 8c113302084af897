package entity

// Sentiment is the backend's classification of an article's tone.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// NewsArticle is a news item related to a stock.
type NewsArticle struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Summary   string    `json:"summary" yaml:"summary"`
	Source    string    `json:"source" yaml:"source"`
	URL       string    `json:"url" yaml:"url"`
	Sentiment Sentiment `json:"sentiment" yaml:"sentiment"`
	// PublishedAt is a display string ("2 hours ago" or an ISO timestamp),
	// not something to sort on.
	PublishedAt string `json:"publishedAt" yaml:"publishedAt"`
}
