// internal/common/search/simulated.go
package search

import (
	"context"
	"fmt"

	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/common/metrics"
	"magnet-factory/internal/common/normalize"
	"magnet-factory/internal/models"
)

const (
	simulatedResults   = 3
	simulatedMaxTokens = 800
)

// Simulated asks the generation client to play a search engine.
type Simulated struct {
	gen    normalize.Generator
	logger logger.Logger
}

func NewSimulated(gen normalize.Generator, log logger.Logger) *Simulated {
	return &Simulated{gen: gen, logger: log}
}

// Search never fails. On any generation or parse error it returns a single
// placeholder result echoing the query. n is ignored; the simulated engine
// always asks for three results.
func (s *Simulated) Search(ctx context.Context, query string, n int) []models.SearchResult {
	res := normalize.Generate[[]models.SearchResult](ctx, s.gen, models.GenerationRequest{
		Prompt:    simulatedSearchPrompt(query),
		MaxTokens: simulatedMaxTokens,
	})
	if res.Err != nil || len(res.Value) == 0 {
		metrics.SearchRequests.WithLabelValues("simulated", "placeholder").Inc()
		fields := map[string]interface{}{"query": query}
		if res.Err != nil {
			fields["error"] = res.Err.Error()
		}
		s.logger.Warn("simulated search failed, returning placeholder", fields)
		return []models.SearchResult{Placeholder(query)}
	}

	metrics.SearchRequests.WithLabelValues("simulated", "success").Inc()
	return res.Value
}

// Placeholder is the single result returned when even simulation fails.
func Placeholder(query string) models.SearchResult {
	return models.SearchResult{
		Title:   "Error en búsqueda",
		Snippet: query,
		Link:    "#",
		Source:  models.SourceFallback,
	}
}

func simulatedSearchPrompt(query string) string {
	return fmt.Sprintf(`Actúa como un motor de búsqueda. Para la query: "%s"

Genera %d resultados de búsqueda REALISTAS basados en fuentes conocidas (HubSpot, Gartner, Forbes, LinkedIn, etc).
Los datos deben ser plausibles y actuales (2025-2026).

Responde en JSON (sin markdown):
[
    {"title": "...", "snippet": "...", "link": "https://...", "source": "..."}
]`, query, simulatedResults)
}
