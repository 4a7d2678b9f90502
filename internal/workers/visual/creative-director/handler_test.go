// internal/workers/visual/creative-director/handler_test.go
package creativedirector

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"magnet-factory/internal/common/brand"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Fakes
// ==========================

type fakeImages struct {
	mu       sync.Mutex
	err      error
	failOn   string
	requests []models.ImageRequest
}

func (f *fakeImages) GenerateImage(_ context.Context, req models.ImageRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if f.failOn != "" && strings.Contains(req.Prompt, f.failOn) {
		return "", errors.New("content policy violation")
	}
	return "https://images.example.com/" + req.Size + ".png", nil
}

func createTestHandler(t *testing.T, images *fakeImages) *Handler {
	return NewHandler(LoadConfig(), images, logger.NewTestLogger(t))
}

// ==========================
// Single visuals
// ==========================

func TestHandler_SingleVisuals(t *testing.T) {
	tests := []struct {
		name           string
		run            func(h *Handler) models.VisualResult
		expectedSize   string
		validateOutput func(t *testing.T, res models.VisualResult)
	}{
		{
			name:         "carousel cover",
			run:          func(h *Handler) models.VisualResult { return h.GenerateCarouselCover(context.Background(), "Adiós Spaghetti", "caos táctico") },
			expectedSize: models.SizeSquare,
			validateOutput: func(t *testing.T, res models.VisualResult) {
				assert.Equal(t, models.VisualCarouselCover, res.Type)
				assert.Equal(t, "Adiós Spaghetti", res.Title)
			},
		},
		{
			name:         "ebook cover",
			run:          func(h *Handler) models.VisualResult { return h.GenerateEbookCover(context.Background(), "Guía", "sub") },
			expectedSize: models.SizePortrait,
			validateOutput: func(t *testing.T, res models.VisualResult) {
				assert.Equal(t, models.VisualEbookCover, res.Type)
				assert.Equal(t, "Guía", res.Title)
			},
		},
		{
			name:         "social graphic twitter",
			run:          func(h *Handler) models.VisualResult { return h.GenerateSocialGraphic(context.Background(), "IA", "twitter") },
			expectedSize: models.SizeLandscape,
			validateOutput: func(t *testing.T, res models.VisualResult) {
				assert.Equal(t, models.VisualSocialGraphic, res.Type)
				assert.Equal(t, "twitter", res.Platform)
				assert.Equal(t, "IA", res.Concept)
			},
		},
		{
			name:         "social graphic unknown platform",
			run:          func(h *Handler) models.VisualResult { return h.GenerateSocialGraphic(context.Background(), "IA", "tiktok") },
			expectedSize: models.SizeSquare,
			validateOutput: func(t *testing.T, res models.VisualResult) {
				assert.Equal(t, "tiktok", res.Platform)
			},
		},
		{
			name:         "social graphic default platform",
			run:          func(h *Handler) models.VisualResult { return h.GenerateSocialGraphic(context.Background(), "IA", "") },
			expectedSize: models.SizeSquare,
			validateOutput: func(t *testing.T, res models.VisualResult) {
				assert.Equal(t, PlatformLinkedIn, res.Platform)
			},
		},
		{
			name: "infographic hero",
			run: func(h *Handler) models.VisualResult {
				return h.GenerateInfographicHero(context.Background(), "Marketing", []interface{}{map[string]interface{}{"stat": "73%"}})
			},
			expectedSize: models.SizeLandscape,
			validateOutput: func(t *testing.T, res models.VisualResult) {
				assert.Equal(t, models.VisualInfographicHero, res.Type)
				assert.Equal(t, "Marketing", res.Topic)
			},
		},
		{
			name: "slide visual",
			run: func(h *Handler) models.VisualResult {
				return h.GenerateSlideVisual(context.Background(), map[string]interface{}{"title": "El problema", "visual_note": "gráfico roto"})
			},
			expectedSize: models.SizeSquare,
			validateOutput: func(t *testing.T, res models.VisualResult) {
				assert.Equal(t, models.VisualSlide, res.Type)
				assert.Equal(t, "El problema", res.SlideTitle)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := &fakeImages{}
			h := createTestHandler(t, images)

			res := tt.run(h)

			require.True(t, res.Success)
			assert.NotEmpty(t, res.ImageURL)
			require.Len(t, images.requests, 1)
			assert.Equal(t, tt.expectedSize, images.requests[0].Size)
			assert.Contains(t, images.requests[0].Prompt, brand.VisualStyle)
			tt.validateOutput(t, res)
		})
	}
}

func TestHandler_FailureNeverPanics(t *testing.T) {
	h := createTestHandler(t, &fakeImages{err: errors.New("rate limited")})

	res := h.GenerateEbookCover(context.Background(), "Guía", "")

	assert.False(t, res.Success)
	assert.Equal(t, "rate limited", res.Error)
	assert.Empty(t, res.ImageURL)
	assert.Empty(t, res.Title)
	assert.Equal(t, models.VisualEbookCover, res.Type)
}

func TestDataContext(t *testing.T) {
	tests := []struct {
		name     string
		stats    []interface{}
		expected string
	}{
		{name: "no stats uses topic", stats: nil, expected: "Marketing"},
		{
			name: "first three stats",
			stats: []interface{}{
				map[string]interface{}{"stat": "a"},
				map[string]interface{}{"stat": "b"},
				"plain c",
				map[string]interface{}{"stat": "d"},
			},
			expected: "a, b, plain c",
		},
		{name: "map without stat", stats: []interface{}{map[string]interface{}{"source": "x"}}, expected: "map[source:x]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dataContext("Marketing", tt.stats))
		})
	}
}

// ==========================
// Carousel set
// ==========================

func makeSlides(n int) []interface{} {
	slides := make([]interface{}, n)
	for i := range slides {
		slides[i] = map[string]interface{}{
			"slide_number": float64(i + 1),
			"title":        "slide",
		}
	}
	return slides
}

func TestKeySlideIndices(t *testing.T) {
	tests := []struct {
		n        int
		expected []int
	}{
		{0, []int{}},
		{1, []int{0}},
		{2, []int{0, 1}},
		{4, []int{0, 3}},
		{5, []int{0, 4}},
		{6, []int{0, 4, 5}},
		{10, []int{0, 4, 9}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, keySlideIndices(tt.n), "n=%d", tt.n)
	}
}

func TestHandler_GenerateAllCarouselVisuals(t *testing.T) {
	tests := []struct {
		name           string
		carousel       models.Record
		failOn         string
		validateOutput func(t *testing.T, results []models.VisualResult)
	}{
		{
			name:     "ten slides",
			carousel: models.Record{"carousel_title": "T", "hook": "H", "slides": makeSlides(10)},
			validateOutput: func(t *testing.T, results []models.VisualResult) {
				require.Len(t, results, 4)
				assert.Equal(t, 0, *results[0].SlideNumber)
				assert.Equal(t, models.VisualCarouselCover, results[0].Type)
				assert.Equal(t, "T", results[0].Title)
				assert.Equal(t, 1, *results[1].SlideNumber)
				assert.Equal(t, 5, *results[2].SlideNumber)
				assert.Equal(t, 10, *results[3].SlideNumber)
			},
		},
		{
			name:     "four slides",
			carousel: models.Record{"carousel_title": "T", "hook": "H", "slides": makeSlides(4)},
			validateOutput: func(t *testing.T, results []models.VisualResult) {
				require.Len(t, results, 3)
				assert.Equal(t, 0, *results[0].SlideNumber)
				assert.Equal(t, 1, *results[1].SlideNumber)
				assert.Equal(t, models.VisualSlide, results[1].Type)
				assert.Equal(t, 4, *results[2].SlideNumber)
			},
		},
		{
			name:     "single slide deduplicated",
			carousel: models.Record{"carousel_title": "T", "slides": makeSlides(1)},
			validateOutput: func(t *testing.T, results []models.VisualResult) {
				require.Len(t, results, 2)
				assert.Equal(t, 1, *results[1].SlideNumber)
			},
		},
		{
			name:     "no slides",
			carousel: models.Record{"carousel_title": "T"},
			validateOutput: func(t *testing.T, results []models.VisualResult) {
				require.Len(t, results, 1)
				assert.Equal(t, 0, *results[0].SlideNumber)
			},
		},
		{
			name: "missing or odd slide numbers",
			carousel: models.Record{"slides": []interface{}{
				map[string]interface{}{"title": "a"},
				map[string]interface{}{"title": "b", "slide_number": "7"},
			}},
			validateOutput: func(t *testing.T, results []models.VisualResult) {
				require.Len(t, results, 3)
				assert.Equal(t, 1, *results[1].SlideNumber)
				assert.Equal(t, 7, *results[2].SlideNumber)
			},
		},
		{
			name:     "cover failure keeps going",
			carousel: models.Record{"carousel_title": "T", "hook": "FAILME", "slides": makeSlides(3)},
			failOn:   "FAILME",
			validateOutput: func(t *testing.T, results []models.VisualResult) {
				require.Len(t, results, 3)
				assert.False(t, results[0].Success)
				assert.Equal(t, models.VisualCarouselCover, results[0].Type)
				assert.Equal(t, 0, *results[0].SlideNumber)
				assert.True(t, results[1].Success)
				assert.True(t, results[2].Success)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, &fakeImages{failOn: tt.failOn})
			tt.validateOutput(t, h.GenerateAllCarouselVisuals(context.Background(), tt.carousel))
		})
	}
}
