// internal/workers/content/product-architect/handler.go
package productarchitect

import (
	"context"

	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/common/normalize"
	"magnet-factory/internal/common/validation"
	"magnet-factory/internal/models"
	"magnet-factory/pkg/catalog"
)

const (
	TaskType = "product-architect"
)

type Handler struct {
	config  *Config
	gen     normalize.Generator
	catalog *catalog.FormatCatalog
	logger  logger.Logger
}

// NewHandler builds the content stage. A nil catalog falls back to the
// built-in one.
func NewHandler(config *Config, gen normalize.Generator, formats *catalog.FormatCatalog, log logger.Logger) *Handler {
	if formats == nil {
		formats = catalog.Default()
	}
	return &Handler{
		config:  config,
		gen:     gen,
		catalog: formats,
		logger: logger.ForStage(log, TaskType),
	}
}

// CreateContent routes to the creator for format. It fails only for an
// unknown format; generation problems come back as an {"error"} record.
func (h *Handler) CreateContent(ctx context.Context, format models.FormatType, research models.Record, opts Options) (models.Record, error) {
	spec, ok := formatTable[format]
	if !ok {
		return nil, &UnknownFormatError{Format: string(format), Available: models.FormatNames()}
	}
	return h.create(ctx, format, spec, research, opts), nil
}

func (h *Handler) CreateCarousel(ctx context.Context, research models.Record, title string) models.Record {
	return h.createFormat(ctx, models.FormatCarousel, research, Options{Title: title})
}

func (h *Handler) CreateGuide(ctx context.Context, research models.Record, title string, pages int) models.Record {
	return h.createFormat(ctx, models.FormatGuide, research, Options{Title: title, Pages: pages})
}

func (h *Handler) CreateChecklist(ctx context.Context, research models.Record, title string) models.Record {
	return h.createFormat(ctx, models.FormatChecklist, research, Options{Title: title})
}

func (h *Handler) CreateTemplate(ctx context.Context, research models.Record, templateType string) models.Record {
	return h.createFormat(ctx, models.FormatTemplate, research, Options{TemplateType: templateType})
}

func (h *Handler) CreateMinicourse(ctx context.Context, research models.Record, title string) models.Record {
	return h.createFormat(ctx, models.FormatMinicourse, research, Options{Title: title})
}

func (h *Handler) CreateWorksheet(ctx context.Context, research models.Record, title string) models.Record {
	return h.createFormat(ctx, models.FormatWorksheet, research, Options{Title: title})
}

func (h *Handler) CreateSwipefile(ctx context.Context, research models.Record, swipeType string) models.Record {
	return h.createFormat(ctx, models.FormatSwipefile, research, Options{SwipeType: swipeType})
}

func (h *Handler) CreateCasestudy(ctx context.Context, research models.Record, title string) models.Record {
	return h.createFormat(ctx, models.FormatCasestudy, research, Options{Title: title})
}

func (h *Handler) CreateToolkit(ctx context.Context, research models.Record, title string) models.Record {
	return h.createFormat(ctx, models.FormatToolkit, research, Options{Title: title})
}

func (h *Handler) CreateCheatsheet(ctx context.Context, research models.Record, title string) models.Record {
	return h.createFormat(ctx, models.FormatCheatsheet, research, Options{Title: title})
}

// CreateDataReport turns gathered industry statistics into a report. The
// title defaults to the stats' report_title.
func (h *Handler) CreateDataReport(ctx context.Context, stats models.Record, title string) models.Record {
	return h.createFormat(ctx, models.FormatDataReport, stats, Options{Title: title})
}

func (h *Handler) createFormat(ctx context.Context, format models.FormatType, research models.Record, opts Options) models.Record {
	return h.create(ctx, format, formatTable[format], research, opts)
}

func (h *Handler) create(ctx context.Context, format models.FormatType, spec formatSpec, research models.Record, opts Options) models.Record {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	opts = h.withDefaults(opts)
	log := h.logger.With(map[string]interface{}{"format": string(format)})
	log.Info("creating content", map[string]interface{}{
		"title":     opts.Title,
		"maxTokens": spec.maxTokens,
	})

	record := normalize.GenerateRecord(ctx, h.gen, models.GenerationRequest{
		Prompt:    spec.prompt(research, opts),
		MaxTokens: spec.maxTokens,
	}, log)

	if !record.IsError() {
		h.checkShape(log, format, record)
	}
	return record
}

func (h *Handler) withDefaults(opts Options) Options {
	if opts.Pages <= 0 {
		opts.Pages = h.config.DefaultPages
	}
	if opts.TemplateType == "" {
		opts.TemplateType = h.config.DefaultTemplateType
	}
	if opts.SwipeType == "" {
		opts.SwipeType = h.config.DefaultSwipeType
	}
	return opts
}

// checkShape logs a warning when the record does not match the catalog's
// output schema for format. The record is kept either way.
func (h *Handler) checkShape(log logger.Logger, format models.FormatType, record models.Record) {
	if !h.config.ValidateOutput {
		return
	}
	f, ok := h.catalog.Lookup(string(format))
	if !ok {
		return
	}

	result, err := validation.ValidateDocument(f.OutputSchema, record)
	if err != nil {
		log.Warn("output schema unusable", map[string]interface{}{"error": err.Error()})
		return
	}
	if !result.Valid {
		log.Warn("content does not match expected shape", map[string]interface{}{
			"problems": result.GetErrorMessages(),
		})
	}
}
