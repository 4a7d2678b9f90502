// internal/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/models"
	"magnet-factory/internal/pipeline"
	growthcopywriter "magnet-factory/internal/workers/distribution/growth-copywriter"
)

// respondJSON always writes 200; failures are signalled in the body.
func respondJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}

type healthResponse struct {
	Status   string                `json:"status"`
	Version  string                `json:"version"`
	AIStatus models.ProviderStatus `json:"ai_status"`
	Time     string                `json:"time"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, healthResponse{
		Status:   "ok",
		Version:  s.cfg.App.Version,
		AIStatus: s.deps.Providers.Status(),
		Time:     time.Now().Format(time.RFC3339),
	})
}

type generateResponse struct {
	Success  bool                `json:"success"`
	RunID    string              `json:"run_id"`
	Route    models.Route        `json:"route"`
	Research models.Record       `json:"research"`
	Content  models.Record       `json:"content"`
	Visual   models.VisualResult `json:"visual"`
	Post     models.Record       `json:"post"`
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, generateSchema, &req); err != nil {
		s.errors.HandleError(w, r, err, "")
		return
	}

	run, err := s.deps.Pipeline.Run(r.Context(), req.pipelineRequest())
	if err != nil {
		runID := ""
		if run != nil {
			runID = run.ID()
		}
		s.errors.HandleError(w, r, err, runID)
		return
	}

	res := run.Snapshot().Result
	respondJSON(w, generateResponse{
		Success:  true,
		RunID:    run.ID(),
		Route:    res.Route,
		Research: res.Research,
		Content:  res.Content,
		Visual:   res.Visual,
		Post:     res.Post,
	})
}

func (s *Server) trends(w http.ResponseWriter, r *http.Request) {
	trends := s.deps.Research.FindTrendingTopics(r.Context())
	if trends == nil {
		trends = []models.TrendingTopic{}
	}
	respondJSON(w, map[string]interface{}{
		"success": true,
		"trends":  trends,
	})
}

func (s *Server) research(w http.ResponseWriter, r *http.Request) {
	var req researchRequest
	if err := decodeBody(r, researchSchema, &req); err != nil {
		s.errors.HandleError(w, r, err, "")
		return
	}

	research, err := s.deps.Research.ResearchTrend(r.Context(), req.Topic)
	if err != nil {
		s.errors.HandleError(w, r, err, "")
		return
	}
	respondJSON(w, map[string]interface{}{
		"success":  true,
		"research": research,
	})
}

type runResponse struct {
	Success bool           `json:"success"`
	Status  pipeline.State `json:"status"`
	pipeline.Snapshot
}

func newRunResponse(run *pipeline.Run) runResponse {
	snap := run.Snapshot()
	return runResponse{
		Success:  snap.State != pipeline.StateFailed,
		Status:   snap.State,
		Snapshot: snap,
	}
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	run, ok := s.deps.Pipeline.Store().Latest()
	if !ok {
		respondJSON(w, map[string]interface{}{"status": pipeline.StateIdle})
		return
	}
	respondJSON(w, newRunResponse(run))
}

func (s *Server) formats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]interface{}{
		"success": true,
		"version": s.deps.Catalog.Version,
		"formats": s.deps.Catalog.Formats,
	})
}

func (s *Server) startRun(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, generateSchema, &req); err != nil {
		s.errors.HandleError(w, r, err, "")
		return
	}

	run, err := s.deps.Pipeline.Start(req.pipelineRequest())
	if err != nil {
		s.errors.HandleError(w, r, err, "")
		return
	}
	respondJSON(w, map[string]interface{}{
		"success": true,
		"run_id":  run.ID(),
		"status":  run.State(),
	})
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	run, ok := s.deps.Pipeline.Store().Get(id)
	if !ok {
		s.errors.HandleError(w, r, apperrors.NewRunNotFoundError(id), id)
		return
	}
	respondJSON(w, newRunResponse(run))
}

func (s *Server) refreshProviders(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.deps.ReloadConfig()
	if err != nil {
		s.errors.HandleError(w, r, err, "")
		return
	}
	s.deps.Providers.Refresh(cfg.Providers)

	status := s.deps.Providers.Status()
	s.logger.Info("providers refreshed", map[string]interface{}{
		"primary":   status.Primary,
		"openai":    status.OpenAI,
		"anthropic": status.Anthropic,
	})
	respondJSON(w, map[string]interface{}{
		"success":   true,
		"ai_status": status,
	})
}

func (s *Server) distribution(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")

	var req distributionRequest
	if err := decodeBody(r, distributionSchema, &req); err != nil {
		s.errors.HandleError(w, r, err, "")
		return
	}

	var record models.Record
	ctx := r.Context()
	switch kind {
	case growthcopywriter.KindCarouselIntro:
		carousel := req.Carousel
		if carousel == nil {
			carousel = req.Content
		}
		record = s.deps.Copy.WriteCarouselIntroPost(ctx, carousel)
	case growthcopywriter.KindDM:
		record = s.deps.Copy.WriteDMResponse(ctx, req.Title, req.Link)
	case growthcopywriter.KindEmailSequence:
		record = s.deps.Copy.WriteEmailSequence(ctx, req.Content)
	case growthcopywriter.KindLanding:
		record = s.deps.Copy.WriteLandingPageCopy(ctx, req.Content)
	default:
		s.errors.HandleError(w, r, apperrors.NewInvalidRequestError("unknown distribution kind: "+kind), "")
		return
	}

	respondJSON(w, map[string]interface{}{
		"success": !record.IsError(),
		"kind":    kind,
		"result":  record,
	})
}

func (s *Server) carouselVisuals(w http.ResponseWriter, r *http.Request) {
	var req carouselVisualsRequest
	if err := decodeBody(r, carouselVisualsSchema, &req); err != nil {
		s.errors.HandleError(w, r, err, "")
		return
	}

	visuals := s.deps.Visuals.GenerateAllCarouselVisuals(r.Context(), req.Carousel)
	respondJSON(w, map[string]interface{}{
		"success": true,
		"visuals": visuals,
	})
}
