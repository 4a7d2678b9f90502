// internal/pipeline/stages.go
package pipeline

import (
	"context"

	"magnet-factory/internal/models"
	productarchitect "magnet-factory/internal/workers/content/product-architect"
	runnotifier "magnet-factory/internal/workers/notification/run-notifier"
)

type Researcher interface {
	FindTrendingTopics(ctx context.Context) []models.TrendingTopic
	ResearchTrend(ctx context.Context, topic string) (models.Record, error)
	AnalyzePainPoint(ctx context.Context, painPoint string) (models.Record, error)
	GatherIndustryStats(ctx context.Context, industry string) (models.Record, error)
}

type ContentCreator interface {
	CreateContent(ctx context.Context, format models.FormatType, research models.Record, opts productarchitect.Options) (models.Record, error)
	CreateDataReport(ctx context.Context, stats models.Record, title string) models.Record
}

type VisualDesigner interface {
	GenerateCarouselCover(ctx context.Context, title, theme string) models.VisualResult
	GenerateEbookCover(ctx context.Context, title, subtitle string) models.VisualResult
	GenerateInfographicHero(ctx context.Context, topic string, keyStats []interface{}) models.VisualResult
}

type Copywriter interface {
	WriteLinkedInPost(ctx context.Context, content, research models.Record, trigger string) models.Record
}

type Notifier interface {
	Notify(ctx context.Context, input *runnotifier.Input) *runnotifier.Output
}

// Stages groups the collaborators a run calls in order. Notifier may be nil.
type Stages struct {
	Research Researcher
	Content  ContentCreator
	Visual   VisualDesigner
	Copy     Copywriter
	Notifier Notifier
}
