// internal/workers/research/market-intel/handler.go
package marketintel

import (
	"context"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/common/normalize"
	"magnet-factory/internal/models"
)

const (
	TaskType = "market-intel"
)

// Searcher runs several queries and concatenates their results in query
// order. It never fails.
type Searcher interface {
	SearchAll(ctx context.Context, queries []string, n int) []models.SearchResult
}

type Handler struct {
	config *Config
	gen    normalize.Generator
	search Searcher
	logger logger.Logger
}

func NewHandler(config *Config, gen normalize.Generator, search Searcher, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		gen:    gen,
		search: search,
		logger: logger.ForStage(log, TaskType),
	}
}

// ResearchTrend gathers search evidence for topic and asks for a strategic
// reading of it. A response that cannot be parsed yields the fallback
// record; a provider failure is returned as RESEARCH_FAILED.
func (h *Handler) ResearchTrend(ctx context.Context, topic string) (models.Record, error) {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	h.logger.Info("researching trend", map[string]interface{}{"topic": topic})

	results := h.search.SearchAll(ctx, []string{
		topic + " estadísticas 2025 2026",
		topic + " tendencias marketing B2B",
		topic + " LinkedIn viral posts",
	}, h.config.ResultsPerQuery)

	raw, err := h.gen.Generate(ctx, models.GenerationRequest{
		Prompt:    researchTrendPrompt(topic, results),
		MaxTokens: researchTrendMaxTokens,
	})
	if err != nil {
		return nil, h.fail(OpResearchTrend, err)
	}

	record, err := normalize.Normalize(raw)
	if err != nil {
		h.logger.Warn("trend analysis malformed, using fallback record", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return fallbackTrend(topic), nil
	}
	return record, nil
}

func fallbackTrend(topic string) models.Record {
	return models.Record{
		"trend_summary":     "Tendencia sobre " + topic,
		"data_points":       []interface{}{},
		"strategic_gap":     "FastStrat automatiza la estrategia",
		"lead_magnet_angle": topic,
		"viral_potential":   "medio",
		"reasoning":         "Error en análisis",
	}
}

// FindTrendingTopics returns up to five topics worth a lead magnet. Any
// failure yields an empty list.
func (h *Handler) FindTrendingTopics(ctx context.Context) []models.TrendingTopic {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	results := h.search.SearchAll(ctx, trendingQueries, h.config.ResultsPerQuery)

	res := normalize.Generate[[]models.TrendingTopic](ctx, h.gen, models.GenerationRequest{
		Prompt:    trendingTopicsPrompt(results),
		MaxTokens: trendingMaxTokens,
	})
	if res.Err != nil {
		h.logger.Error("trending topics failed", map[string]interface{}{
			"errorCode": string(apperrors.CodeOf(res.Err)),
			"error":     res.Err.Error(),
		})
		return []models.TrendingTopic{}
	}
	if res.Value == nil {
		return []models.TrendingTopic{}
	}

	h.logger.Info("trending topics found", map[string]interface{}{"count": len(res.Value)})
	return res.Value
}

// AnalyzePainPoint researches a customer pain and recommends a lead magnet
// for it.
func (h *Handler) AnalyzePainPoint(ctx context.Context, painPoint string) (models.Record, error) {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	h.logger.Info("analyzing pain point", map[string]interface{}{"painPoint": painPoint})

	results := h.search.SearchAll(ctx, []string{painPoint + " solución marketing PyMEs"}, h.config.PainResults)
	return h.generateRecord(ctx, OpPainPoint, painPointPrompt(painPoint, results), painPointMaxTokens)
}

// GatherIndustryStats collects sourced statistics for a data report.
func (h *Handler) GatherIndustryStats(ctx context.Context, industry string) (models.Record, error) {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	h.logger.Info("gathering industry stats", map[string]interface{}{"industry": industry})

	results := h.search.SearchAll(ctx, []string{
		industry + " statistics 2025 2026",
		industry + " benchmark report",
		"state of " + industry + " report gartner hubspot",
	}, h.config.ResultsPerQuery)
	return h.generateRecord(ctx, OpIndustryStats, industryStatsPrompt(industry, results), industryStatsMaxTokens)
}

func (h *Handler) generateRecord(ctx context.Context, op, prompt string, maxTokens int) (models.Record, error) {
	raw, err := h.gen.Generate(ctx, models.GenerationRequest{Prompt: prompt, MaxTokens: maxTokens})
	if err != nil {
		return nil, h.fail(op, err)
	}
	record, err := normalize.Normalize(raw)
	if err != nil {
		return nil, h.fail(op, err)
	}
	return record, nil
}

func (h *Handler) fail(op string, err error) error {
	h.logger.Error("research failed", map[string]interface{}{
		"operation": op,
		"errorCode": string(apperrors.CodeOf(err)),
		"error":     err.Error(),
	})
	return apperrors.NewResearchFailedError(op, err)
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.config.Timeout)
}
