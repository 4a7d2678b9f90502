// internal/workers/content/product-architect/handler_test.go
package productarchitect

import (
	"context"
	"errors"
	"sync"
	"testing"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"
	"magnet-factory/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Fakes
// ==========================

type fakeGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	requests []models.GenerationRequest
}

func (f *fakeGenerator) Generate(_ context.Context, req models.GenerationRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.response, f.err
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1].Prompt
}

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Debug(string, map[string]interface{}) {}
func (l *recordingLogger) Info(string, map[string]interface{})  {}
func (l *recordingLogger) Error(string, map[string]interface{}) {}
func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}
func (l *recordingLogger) WithFields(map[string]interface{}) logger.Logger { return l }
func (l *recordingLogger) WithError(error) logger.Logger                   { return l }
func (l *recordingLogger) With(map[string]interface{}) logger.Logger       { return l }

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T, gen *fakeGenerator) *Handler {
	return NewHandler(LoadConfig(), gen, nil, logger.NewTestLogger(t))
}

var research = models.Record{
	"trend_summary": "La IA reemplaza tareas de marketing",
	"data_points":   []interface{}{map[string]interface{}{"stat": "73% de PyMEs sin estrategia", "source": "HubSpot"}},
}

// ==========================
// Dispatch
// ==========================

func TestHandler_CreateContent_Dispatch(t *testing.T) {
	tests := []struct {
		format    models.FormatType
		maxTokens int
		marker    string
	}{
		{models.FormatCarousel, 2500, "CAROUSEL COMPLETO"},
		{models.FormatGuide, 4000, "GUÍA/EBOOK COMPLETA"},
		{models.FormatChecklist, 2500, "CHECKLIST COMPLETO"},
		{models.FormatTemplate, 3000, "TEMPLATE utilizable"},
		{models.FormatMinicourse, 5000, "MINI-CURSO de 5 emails"},
		{models.FormatWorksheet, 4000, "WORKSHEET interactivo"},
		{models.FormatSwipefile, 4500, "SWIPE FILE completo"},
		{models.FormatCasestudy, 4000, "CASO DE ESTUDIO detallado"},
		{models.FormatToolkit, 5000, "TOOLKIT completo"},
		{models.FormatCheatsheet, 3000, "CHEAT SHEET"},
		{models.FormatDataReport, 4000, "REPORTE DE DATOS"},
	}

	require.Len(t, tests, len(models.AllFormats))

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			gen := &fakeGenerator{response: `{"` + TitleKey(tt.format) + `": "Titulo"}`}
			h := createTestHandler(t, gen)

			record, err := h.CreateContent(context.Background(), tt.format, research, Options{})

			require.NoError(t, err)
			assert.Equal(t, "Titulo", record.String(TitleKey(tt.format)))
			require.Len(t, gen.requests, 1)
			assert.Equal(t, tt.maxTokens, gen.requests[0].MaxTokens)
			assert.Contains(t, gen.requests[0].Prompt, tt.marker)
			assert.Contains(t, gen.requests[0].Prompt, "73% de PyMEs sin estrategia")
		})
	}
}

func TestHandler_CreateContent_UnknownFormat(t *testing.T) {
	gen := &fakeGenerator{}
	h := createTestHandler(t, gen)

	record, err := h.CreateContent(context.Background(), "podcast", research, Options{})

	require.Error(t, err)
	assert.Nil(t, record)
	assert.Empty(t, gen.requests)

	var unknown *UnknownFormatError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "podcast", unknown.Format)
	assert.Equal(t, "Unknown format: podcast. Available: carousel, guide, checklist, template, minicourse, worksheet, swipefile, casestudy, toolkit, cheatsheet, datareport", err.Error())
	assert.True(t, errors.Is(err, apperrors.ErrUnknownFormat))
	assert.Equal(t, apperrors.ErrCodeUnknownFormat, apperrors.CodeOf(err))
}

// ==========================
// Failure records
// ==========================

func TestHandler_CreateContent_Failures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		genErr   error
		contains string
	}{
		{name: "malformed", response: "Aquí está tu carousel: ...", contains: "could not be parsed"},
		{name: "provider", genErr: apperrors.NewProviderUnavailableError(), contains: "No AI client available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, &fakeGenerator{response: tt.response, err: tt.genErr})

			record := h.CreateCarousel(context.Background(), research, "")

			require.True(t, record.IsError())
			assert.Contains(t, record.ErrorMessage(), tt.contains)
		})
	}
}

// ==========================
// Options and defaults
// ==========================

func TestHandler_OptionsInPrompt(t *testing.T) {
	tests := []struct {
		name     string
		run      func(h *Handler) models.Record
		expected []string
	}{
		{
			name:     "guide default pages",
			run:      func(h *Handler) models.Record { return h.CreateGuide(context.Background(), research, "Mi guía", 0) },
			expected: []string{"PÁGINAS OBJETIVO: 7", "TÍTULO SUGERIDO: Mi guía", "GUÍA PARA LEAD MAGNETS"},
		},
		{
			name:     "template default type",
			run:      func(h *Handler) models.Record { return h.CreateTemplate(context.Background(), research, "") },
			expected: []string{"TIPO DE TEMPLATE: strategy"},
		},
		{
			name:     "swipefile custom type",
			run:      func(h *Handler) models.Record { return h.CreateSwipefile(context.Background(), research, "outreach") },
			expected: []string{"TIPO DE SWIPE: outreach", `"swipe_type": "outreach"`},
		},
		{
			name:     "checklist without title",
			run:      func(h *Handler) models.Record { return h.CreateChecklist(context.Background(), research, "") },
			expected: []string{"TÍTULO SUGERIDO: Genera uno basado en el research"},
		},
		{
			name:     "data report title from stats",
			run:      func(h *Handler) models.Record { return h.CreateDataReport(context.Background(), models.Record{"report_title": "Fintech 2026"}, "") },
			expected: []string{"TÍTULO SUGERIDO: Fintech 2026", "ESTADÍSTICAS RECOPILADAS"},
		},
		{
			name:     "data report default title",
			run:      func(h *Handler) models.Record { return h.CreateDataReport(context.Background(), models.Record{}, "") },
			expected: []string{"TÍTULO SUGERIDO: Estado del Marketing 2026"},
		},
		{
			name:     "data report explicit title wins",
			run:      func(h *Handler) models.Record { return h.CreateDataReport(context.Background(), models.Record{"report_title": "X"}, "Mi reporte") },
			expected: []string{"TÍTULO SUGERIDO: Mi reporte"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{response: `{}`}
			h := createTestHandler(t, gen)

			tt.run(h)

			prompt := gen.lastPrompt()
			for _, want := range tt.expected {
				assert.Contains(t, prompt, want)
			}
		})
	}
}

func TestHandler_GuidelinesOnlyForCarouselAndGuide(t *testing.T) {
	gen := &fakeGenerator{response: `{}`}
	h := createTestHandler(t, gen)

	h.CreateChecklist(context.Background(), research, "")
	assert.NotContains(t, gen.lastPrompt(), "GUÍA PARA LEAD MAGNETS")
	assert.Contains(t, gen.lastPrompt(), "FASTSTRAT - BRAND DNA")

	h.CreateCarousel(context.Background(), research, "")
	assert.Contains(t, gen.lastPrompt(), "GUÍA PARA LEAD MAGNETS")
}

// ==========================
// Output shape
// ==========================

func TestHandler_ShapeMismatchOnlyWarns(t *testing.T) {
	log := &recordingLogger{}
	gen := &fakeGenerator{response: `{"carousel_title": "Sin slides"}`}
	h := NewHandler(LoadConfig(), gen, catalog.Default(), log)

	record := h.CreateCarousel(context.Background(), research, "")

	assert.False(t, record.IsError())
	assert.Equal(t, "Sin slides", record.String("carousel_title"))
	assert.Contains(t, log.warns, "content does not match expected shape")
}

func TestHandler_ShapeMatchDoesNotWarn(t *testing.T) {
	log := &recordingLogger{}
	gen := &fakeGenerator{response: `{"carousel_title": "T", "slides": [{"slide_number": 1, "title": "a", "body": "b"}]}`}
	h := NewHandler(LoadConfig(), gen, catalog.Default(), log)

	record := h.CreateCarousel(context.Background(), research, "")

	assert.False(t, record.IsError())
	assert.Empty(t, log.warns)
}

func TestFormatTableMatchesCatalog(t *testing.T) {
	c := catalog.Default()
	for _, format := range models.AllFormats {
		f, ok := c.Lookup(string(format))
		require.True(t, ok, format)
		assert.Equal(t, MaxTokens(format), f.MaxTokens, format)
		assert.Equal(t, TitleKey(format), f.TitleKey, format)
	}
	assert.Equal(t, models.FormatNames(), c.IDs())
}
