// internal/pipeline/routes.go
package pipeline

import (
	"context"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"
	productarchitect "magnet-factory/internal/workers/content/product-architect"
)

// Title keys in lookup order. Each format names its title field differently.
var (
	trendJackerTitleKeys = []string{
		"carousel_title", "guide_title", "checklist_title", "cheatsheet_title",
		"template_title", "swipefile_title", "course_title", "worksheet_title",
		"toolkit_title", "case_study_title", "report_title",
	}
	problemSolverTitleKeys = []string{
		"guide_title", "checklist_title", "carousel_title", "cheatsheet_title",
		"template_title", "swipefile_title", "course_title", "worksheet_title",
		"toolkit_title", "case_study_title",
	}
	dataAuthorityTitleKeys = []string{"report_title"}
)

// ExtractTitle returns the first non-empty string under keys, or fallback.
func ExtractTitle(content models.Record, keys []string, fallback string) string {
	for _, k := range keys {
		if v := content.String(k); v != "" {
			return v
		}
	}
	return fallback
}

type routeFunc func(ctx context.Context, run *Run, req Request, log logger.Logger) (*models.ProductionResult, error)

func (o *Orchestrator) routeFor(route models.Route) (routeFunc, error) {
	switch route {
	case models.RouteTrendJacker:
		return o.trendJacker, nil
	case models.RouteProblemSolver:
		return o.problemSolver, nil
	case models.RouteDataAuthority:
		return o.dataAuthority, nil
	}
	return nil, apperrors.NewInvalidRouteError(string(route))
}

func (o *Orchestrator) trendJacker(ctx context.Context, run *Run, req Request, log logger.Logger) (*models.ProductionResult, error) {
	format := formatOr(req.Format, models.FormatCarousel)

	var (
		topic    string
		research models.Record
	)
	err := o.stage(ctx, run, StateResearching, func(ctx context.Context) error {
		trends := o.stages.Research.FindTrendingTopics(ctx)
		if len(trends) == 0 {
			return apperrors.NewNoTrendsFoundError()
		}
		topic = trends[0].Topic
		log.Info("trend selected", map[string]interface{}{"topic": topic, "candidates": len(trends)})

		var err error
		research, err = o.stages.Research.ResearchTrend(ctx, topic)
		return err
	})
	if err != nil {
		return nil, err
	}

	content, err := o.draft(ctx, run, format, research, productarchitect.Options{Title: topic})
	if err != nil {
		return nil, err
	}

	title := ExtractTitle(content, trendJackerTitleKeys, topic)
	visual := o.visualize(ctx, run, func(ctx context.Context) models.VisualResult {
		if format == models.FormatCarousel {
			return o.stages.Visual.GenerateCarouselCover(ctx, title, research.String("trend_summary"))
		}
		return o.stages.Visual.GenerateEbookCover(ctx, title, "")
	})

	post := o.distribute(ctx, run, content, research)
	return result(models.RouteTrendJacker, title, research, content, visual, post), nil
}

func (o *Orchestrator) problemSolver(ctx context.Context, run *Run, req Request, log logger.Logger) (*models.ProductionResult, error) {
	format := formatOr(req.Format, models.FormatGuide)
	painPoint := stringOr(req.PainPoint, DefaultPainPoint)

	var research models.Record
	err := o.stage(ctx, run, StateResearching, func(ctx context.Context) error {
		var err error
		research, err = o.stages.Research.AnalyzePainPoint(ctx, painPoint)
		return err
	})
	if err != nil {
		return nil, err
	}

	content, err := o.draft(ctx, run, format, research, productarchitect.Options{})
	if err != nil {
		return nil, err
	}

	title := ExtractTitle(content, problemSolverTitleKeys, painPoint)
	visual := o.visualize(ctx, run, func(ctx context.Context) models.VisualResult {
		if format == models.FormatCarousel {
			return o.stages.Visual.GenerateCarouselCover(ctx, title, research.String("pain_analysis"))
		}
		return o.stages.Visual.GenerateEbookCover(ctx, title, "")
	})

	post := o.distribute(ctx, run, content, research)
	return result(models.RouteProblemSolver, title, research, content, visual, post), nil
}

func (o *Orchestrator) dataAuthority(ctx context.Context, run *Run, req Request, log logger.Logger) (*models.ProductionResult, error) {
	industry := stringOr(req.Industry, DefaultIndustry)
	topic := stringOr(req.Topic, DefaultTopic)

	var stats models.Record
	err := o.stage(ctx, run, StateResearching, func(ctx context.Context) error {
		var err error
		stats, err = o.stages.Research.GatherIndustryStats(ctx, industry)
		return err
	})
	if err != nil {
		return nil, err
	}

	var content models.Record
	_ = o.stage(ctx, run, StateDrafting, func(ctx context.Context) error {
		content = o.stages.Content.CreateDataReport(ctx, stats, topic)
		return recordErr(content)
	})

	title := ExtractTitle(content, dataAuthorityTitleKeys, topic)
	visual := o.visualize(ctx, run, func(ctx context.Context) models.VisualResult {
		return o.stages.Visual.GenerateInfographicHero(ctx, title, stats.List("key_stats"))
	})

	post := o.distribute(ctx, run, content, stats)
	return result(models.RouteDataAuthority, title, stats, content, visual, post), nil
}

// draft runs the content stage. Only an unknown format aborts; generation
// failures arrive as {"error"} records.
func (o *Orchestrator) draft(ctx context.Context, run *Run, format models.FormatType, research models.Record, opts productarchitect.Options) (models.Record, error) {
	var (
		content models.Record
		abort   error
	)
	_ = o.stage(ctx, run, StateDrafting, func(ctx context.Context) error {
		var err error
		content, err = o.stages.Content.CreateContent(ctx, format, research, opts)
		if err != nil {
			abort = err
			return err
		}
		return recordErr(content)
	})
	return content, abort
}

func (o *Orchestrator) visualize(ctx context.Context, run *Run, fn func(ctx context.Context) models.VisualResult) models.VisualResult {
	var visual models.VisualResult
	_ = o.stage(ctx, run, StateVisualizing, func(ctx context.Context) error {
		visual = fn(ctx)
		if !visual.Success {
			return apperrors.NewImageGenerationFailedError(visual.Type, nil)
		}
		return nil
	})
	return visual
}

func (o *Orchestrator) distribute(ctx context.Context, run *Run, content, research models.Record) models.Record {
	var post models.Record
	_ = o.stage(ctx, run, StateDistributing, func(ctx context.Context) error {
		post = o.stages.Copy.WriteLinkedInPost(ctx, content, research, "")
		return recordErr(post)
	})
	return post
}

func result(route models.Route, title string, research, content models.Record, visual models.VisualResult, post models.Record) *models.ProductionResult {
	return &models.ProductionResult{
		Route:    route,
		Title:    title,
		Research: nonNil(research),
		Content:  nonNil(content),
		Visual:   visual,
		Post:     nonNil(post),
	}
}

// recordErr surfaces an {"error"} record so the stage span is marked.
func recordErr(r models.Record) error {
	if r.IsError() {
		return &stageError{msg: r.ErrorMessage()}
	}
	return nil
}

type stageError struct{ msg string }

func (e *stageError) Error() string { return e.msg }

func nonNil(r models.Record) models.Record {
	if r == nil {
		return models.ErrorRecord("stage produced no output")
	}
	return r
}

func formatOr(f, def models.FormatType) models.FormatType {
	if f == "" {
		return def
	}
	return f
}

func stringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
