// internal/models/search.go
package models

// SearchResult is one web (or simulated) search hit.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Source  string `json:"source"`
}

const (
	SourceGoogleSearch = "Google Search"
	SourceFallback     = "Fallback"
)

// TrendingTopic is one candidate surfaced by FindTrendingTopics.
type TrendingTopic struct {
	Topic           string `json:"topic"`
	WhyTrending     string `json:"why_trending"`
	FaststratAngle  string `json:"faststrat_angle"`
	Urgency         string `json:"urgency"`
	SuggestedFormat string `json:"suggested_format"`
}
