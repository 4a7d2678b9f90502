// Package search gathers web signal for the research stage. Serper is the
// real backend; when it is unconfigured or failing, a simulated search
// asks the generation client to invent plausible results.
package search

import (
	"context"
	"time"

	"magnet-factory/internal/common/config"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/common/metrics"
	"magnet-factory/internal/common/normalize"
	"magnet-factory/internal/models"

	"golang.org/x/sync/errgroup"
)

// Searcher returns up to n results for query. It never fails.
type Searcher interface {
	Search(ctx context.Context, query string, n int) []models.SearchResult
}

// Backend is a search source that can fail.
type Backend interface {
	Search(ctx context.Context, query string, n int) ([]models.SearchResult, error)
}

type Service struct {
	backend     Backend
	simulated   *Simulated
	cache       Cache
	cacheTTL    time.Duration
	concurrency int
	logger      logger.Logger
}

// NewService wires the Serper backend, the simulated fallback and an
// optional cache. cache may be nil.
func NewService(cfg config.SearchConfig, gen normalize.Generator, cache Cache, log logger.Logger) *Service {
	return newService(NewSerper(cfg), NewSimulated(gen, log), cache, cfg, log)
}

func newService(backend Backend, simulated *Simulated, cache Cache, cfg config.SearchConfig, log logger.Logger) *Service {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		backend:     backend,
		simulated:   simulated,
		cache:       cache,
		cacheTTL:    time.Duration(cfg.CacheTTL) * time.Second,
		concurrency: concurrency,
		logger: log.With(map[string]interface{}{
			"component": "search",
		}),
	}
}

func (s *Service) Search(ctx context.Context, query string, n int) []models.SearchResult {
	if s.cache != nil && s.cacheTTL > 0 {
		if cached, ok := s.cache.Get(ctx, query, n); ok {
			metrics.SearchRequests.WithLabelValues("cache", "hit").Inc()
			return cached
		}
	}

	results, err := s.backend.Search(ctx, query, n)
	if err == nil {
		metrics.SearchRequests.WithLabelValues("serper", "success").Inc()
		if s.cache != nil && s.cacheTTL > 0 {
			s.cache.Set(ctx, query, n, results, s.cacheTTL)
		}
		return results
	}

	metrics.SearchRequests.WithLabelValues("serper", "unavailable").Inc()
	s.logger.Warn("search backend unavailable, using simulated search", map[string]interface{}{
		"query": query,
		"error": err.Error(),
	})
	return s.simulated.Search(ctx, query, n)
}

// SearchAll runs the queries concurrently and concatenates the results in
// query order.
func (s *Service) SearchAll(ctx context.Context, queries []string, n int) []models.SearchResult {
	perQuery := make([][]models.SearchResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, q := range queries {
		g.Go(func() error {
			perQuery[i] = s.Search(gctx, q, n)
			return nil
		})
	}
	_ = g.Wait()

	var all []models.SearchResult
	for _, results := range perQuery {
		all = append(all, results...)
	}
	return all
}
