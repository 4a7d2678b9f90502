// internal/workers/research/market-intel/models.go
package marketintel

// Token ceilings per research operation.
const (
	researchTrendMaxTokens = 1000
	trendingMaxTokens      = 1200
	painPointMaxTokens     = 1200
	industryStatsMaxTokens = 1500
)

const (
	OpResearchTrend  = "research_trend"
	OpTrendingTopics = "find_trending_topics"
	OpPainPoint      = "analyze_pain_point"
	OpIndustryStats  = "gather_industry_stats"
)

var trendingQueries = []string{
	"marketing trends 2026 B2B",
	"LinkedIn viral posts marketing enero 2026",
	"AI marketing automation trends",
}
