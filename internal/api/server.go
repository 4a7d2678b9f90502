// internal/api/server.go
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"magnet-factory/internal/common/config"
	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"
	"magnet-factory/internal/pipeline"
	"magnet-factory/pkg/catalog"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Researcher serves the standalone research endpoints.
type Researcher interface {
	FindTrendingTopics(ctx context.Context) []models.TrendingTopic
	ResearchTrend(ctx context.Context, topic string) (models.Record, error)
}

type CopyWriter interface {
	WriteCarouselIntroPost(ctx context.Context, carousel models.Record) models.Record
	WriteDMResponse(ctx context.Context, title, link string) models.Record
	WriteEmailSequence(ctx context.Context, content models.Record) models.Record
	WriteLandingPageCopy(ctx context.Context, content models.Record) models.Record
}

type CarouselVisualizer interface {
	GenerateAllCarouselVisuals(ctx context.Context, carousel models.Record) []models.VisualResult
}

type Providers interface {
	Status() models.ProviderStatus
	Refresh(cfg config.ProvidersConfig)
}

// Deps are the collaborators behind the HTTP surface. ReloadConfig is used
// by the provider refresh endpoint.
type Deps struct {
	Pipeline     *pipeline.Orchestrator
	Research     Researcher
	Copy         CopyWriter
	Visuals      CarouselVisualizer
	Providers    Providers
	Catalog      *catalog.FormatCatalog
	ReloadConfig func() (*config.Config, error)
}

type Server struct {
	cfg    *config.Config
	deps   Deps
	logger logger.Logger
	errors *apperrors.ResponseHandler
	http   *http.Server
}

func NewServer(cfg *config.Config, deps Deps, log logger.Logger) *Server {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.ReloadConfig == nil {
		deps.ReloadConfig = config.Load
	}
	log = log.With(map[string]interface{}{"component": "api"})

	s := &Server{
		cfg:    cfg,
		deps:   deps,
		logger: log,
		errors: apperrors.NewResponseHandler(log),
	}
	s.http = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed handler, including /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("POST /generate", s.generate)

	mux.HandleFunc("GET /api/trends", s.trends)
	mux.HandleFunc("POST /api/research", s.research)
	mux.HandleFunc("GET /api/status", s.status)
	mux.HandleFunc("GET /api/formats", s.formats)
	mux.HandleFunc("POST /api/runs", s.startRun)
	mux.HandleFunc("GET /api/runs/{id}", s.getRun)
	mux.HandleFunc("POST /api/providers/refresh", s.refreshProviders)
	mux.HandleFunc("POST /api/distribution/{kind}", s.distribution)
	mux.HandleFunc("POST /api/visuals/carousel", s.carouselVisuals)

	mux.Handle("GET /metrics", promhttp.Handler())

	return s.withRecovery(mux)
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{"addr": s.http.Addr})
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// withRecovery keeps a panicking handler from dropping the connection and
// logs every request.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic", map[string]interface{}{
					"path":  r.URL.Path,
					"panic": rec,
				})
				s.errors.HandleError(w, r, errors.New("internal error"), "")
			}
		}()

		next.ServeHTTP(w, r)

		s.logger.Debug("request served", map[string]interface{}{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		})
	})
}
