// internal/workers/distribution/growth-copywriter/handler.go
package growthcopywriter

import (
	"context"

	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/common/normalize"
	"magnet-factory/internal/models"
)

const (
	TaskType = "growth-copywriter"
)

type Handler struct {
	config *Config
	gen    normalize.Generator
	logger logger.Logger
}

func NewHandler(config *Config, gen normalize.Generator, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		gen:    gen,
		logger: logger.ForStage(log, TaskType),
	}
}

// WriteLinkedInPost writes the distribution post for a lead magnet. The
// comment trigger is trigger, else the content's comment_trigger, else the
// configured default.
func (h *Handler) WriteLinkedInPost(ctx context.Context, content, research models.Record, trigger string) models.Record {
	trigger = h.resolveTrigger(content, trigger)
	return h.write(ctx, "linkedin_post", linkedInPostPrompt(content, research, trigger), linkedInPostMaxTokens)
}

func (h *Handler) WriteCarouselIntroPost(ctx context.Context, carousel models.Record) models.Record {
	return h.write(ctx, "carousel_intro", carouselIntroPrompt(carousel), carouselIntroMaxTokens)
}

func (h *Handler) WriteDMResponse(ctx context.Context, title, link string) models.Record {
	if link == "" {
		link = h.config.DefaultLink
	}
	return h.write(ctx, "dm_response", dmResponsePrompt(title, link), dmResponseMaxTokens)
}

// WriteEmailSequence writes the three-email nurture sequence sent on days
// 0, 2 and 4 after a download.
func (h *Handler) WriteEmailSequence(ctx context.Context, content models.Record) models.Record {
	return h.write(ctx, "email_sequence", emailSequencePrompt(content), emailSequenceMaxTokens)
}

func (h *Handler) WriteLandingPageCopy(ctx context.Context, content models.Record) models.Record {
	return h.write(ctx, "landing_page", landingPagePrompt(content), landingPageMaxTokens)
}

func (h *Handler) resolveTrigger(content models.Record, trigger string) string {
	if trigger != "" {
		return trigger
	}
	if t := content.String("comment_trigger"); t != "" {
		return t
	}
	return h.config.DefaultTrigger
}

func (h *Handler) write(ctx context.Context, op, prompt string, maxTokens int) models.Record {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	log := h.logger.With(map[string]interface{}{"operation": op})
	log.Info("writing copy", map[string]interface{}{"maxTokens": maxTokens})

	return normalize.GenerateRecord(ctx, h.gen, models.GenerationRequest{
		Prompt:    prompt,
		MaxTokens: maxTokens,
	}, log)
}
