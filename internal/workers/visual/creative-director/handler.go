// internal/workers/visual/creative-director/handler.go
package creativedirector

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"magnet-factory/internal/common/brand"
	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/imagegen"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"
)

const (
	TaskType = "creative-director"
)

type Handler struct {
	config *Config
	images imagegen.Generator
	logger logger.Logger
}

func NewHandler(config *Config, images imagegen.Generator, log logger.Logger) *Handler {
	if config.Style == "" {
		config.Style = brand.VisualStyle
	}
	return &Handler{
		config: config,
		images: images,
		logger: logger.ForStage(log, TaskType),
	}
}

func (h *Handler) GenerateCarouselCover(ctx context.Context, title, theme string) models.VisualResult {
	res := h.render(ctx, models.VisualCarouselCover, models.SizeSquare, carouselCoverPrompt(theme, h.config.Style))
	if res.Success {
		res.Title = title
	}
	return res
}

func (h *Handler) GenerateEbookCover(ctx context.Context, title, subtitle string) models.VisualResult {
	res := h.render(ctx, models.VisualEbookCover, models.SizePortrait, ebookCoverPrompt(title, subtitle, h.config.Style))
	if res.Success {
		res.Title = title
	}
	return res
}

// GenerateSocialGraphic sizes the image for platform. Unknown platforms get
// a square image.
func (h *Handler) GenerateSocialGraphic(ctx context.Context, concept, platform string) models.VisualResult {
	if platform == "" {
		platform = PlatformLinkedIn
	}
	res := h.render(ctx, models.VisualSocialGraphic, sizeFor(platform), socialGraphicPrompt(concept, platform, h.config.Style))
	if res.Success {
		res.Platform = platform
		res.Concept = concept
	}
	return res
}

// GenerateInfographicHero uses up to three stats as data context, or the
// topic when there are none.
func (h *Handler) GenerateInfographicHero(ctx context.Context, topic string, keyStats []interface{}) models.VisualResult {
	res := h.render(ctx, models.VisualInfographicHero, models.SizeLandscape, infographicPrompt(topic, dataContext(topic, keyStats), h.config.Style))
	if res.Success {
		res.Topic = topic
	}
	return res
}

func (h *Handler) GenerateSlideVisual(ctx context.Context, slide map[string]interface{}) models.VisualResult {
	title := stringField(slide, "title")
	res := h.render(ctx, models.VisualSlide, models.SizeSquare, slidePrompt(title, stringField(slide, "visual_note"), h.config.Style))
	if res.Success {
		res.SlideTitle = title
	}
	return res
}

// GenerateAllCarouselVisuals renders the cover (slide number 0) and the key
// slides: first, fifth and last for carousels longer than five slides,
// otherwise first and last.
func (h *Handler) GenerateAllCarouselVisuals(ctx context.Context, carousel models.Record) []models.VisualResult {
	cover := h.GenerateCarouselCover(ctx, carousel.String("carousel_title"), carousel.String("hook"))
	cover.SlideNumber = intPtr(0)
	results := []models.VisualResult{cover}

	slides := carousel.List("slides")
	for _, idx := range keySlideIndices(len(slides)) {
		slide, _ := slides[idx].(map[string]interface{})
		visual := h.GenerateSlideVisual(ctx, slide)
		visual.SlideNumber = intPtr(slideNumber(slide, idx))
		results = append(results, visual)
	}

	h.logger.Info("carousel visual set generated", map[string]interface{}{
		"slides":  len(slides),
		"visuals": len(results),
	})
	return results
}

func keySlideIndices(n int) []int {
	candidates := []int{0, n - 1}
	if n > 5 {
		candidates = []int{0, 4, n - 1}
	}
	seen := make(map[int]bool, len(candidates))
	out := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		if idx < 0 || idx >= n || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}

func slideNumber(slide map[string]interface{}, idx int) int {
	switch v := slide["slide_number"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return idx + 1
}

func dataContext(topic string, keyStats []interface{}) string {
	if len(keyStats) == 0 {
		return topic
	}
	if len(keyStats) > 3 {
		keyStats = keyStats[:3]
	}
	parts := make([]string, 0, len(keyStats))
	for _, item := range keyStats {
		if m, ok := item.(map[string]interface{}); ok {
			if stat, ok := m["stat"]; ok {
				parts = append(parts, fmt.Sprint(stat))
				continue
			}
		}
		parts = append(parts, fmt.Sprint(item))
	}
	return strings.Join(parts, ", ")
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func (h *Handler) render(ctx context.Context, visualType, size, prompt string) models.VisualResult {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	url, err := h.images.GenerateImage(ctx, models.ImageRequest{Prompt: prompt, Size: size})
	if err != nil {
		stdErr := apperrors.NewImageGenerationFailedError(visualType, err)
		h.logger.Error("image generation failed", map[string]interface{}{
			"type":      visualType,
			"size":      size,
			"errorCode": string(stdErr.Code),
			"error":     err.Error(),
		})
		return models.VisualResult{Success: false, Error: err.Error(), Type: visualType}
	}

	h.logger.Info("image generated", map[string]interface{}{"type": visualType, "size": size})
	return models.VisualResult{Success: true, ImageURL: url, Type: visualType}
}
