// internal/common/normalize/normalize_test.go
package normalize

import (
	"context"
	"errors"
	"testing"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	return s.text, s.err
}

// ==========================
// Normalize
// ==========================

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		expectError    bool
		validateOutput func(t *testing.T, record models.Record)
	}{
		{
			name: "plain json",
			raw:  `{"carousel_title": "Deja de improvisar"}`,
			validateOutput: func(t *testing.T, record models.Record) {
				assert.Equal(t, "Deja de improvisar", record.String("carousel_title"))
			},
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n{\"guide_title\": \"Guía\", \"sections\": [1, 2]}\n```",
			validateOutput: func(t *testing.T, record models.Record) {
				assert.Equal(t, "Guía", record.String("guide_title"))
				assert.Len(t, record.List("sections"), 2)
			},
		},
		{
			name: "fenced without language tag and surrounding whitespace",
			raw:  "  \n```\n{\"a\": 1}\n```\n  ",
			validateOutput: func(t *testing.T, record models.Record) {
				assert.Equal(t, float64(1), record["a"])
			},
		},
		{
			name: "single line fence",
			raw:  "```json {\"a\": \"b\"}```",
			validateOutput: func(t *testing.T, record models.Record) {
				assert.Equal(t, "b", record.String("a"))
			},
		},
		{
			name: "language tag glued to the object",
			raw:  "```json{\"a\":1}```",
			validateOutput: func(t *testing.T, record models.Record) {
				assert.Equal(t, float64(1), record["a"])
			},
		},
		{
			name:        "prose instead of json",
			raw:         "Here is your carousel: slide 1...",
			expectError: true,
		},
		{
			name:        "array is not a record",
			raw:         `[{"a": 1}]`,
			expectError: true,
		},
		{
			name:        "null is not a record",
			raw:         "null",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Normalize(tt.raw)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrMalformedResponse))

				var malformed *MalformedResponseError
				require.True(t, errors.As(err, &malformed))
				assert.Equal(t, tt.raw, malformed.Raw)
				assert.Equal(t, apperrors.ErrCodeMalformedResponse, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, record)
		})
	}
}

func TestNormalize_FencedMatchesUnfenced(t *testing.T) {
	bodies := []string{
		`{"a": 1, "b": [true, null, "x"]}`,
		`{"nested": {"k": "v"}}`,
		`{}`,
	}
	wrappers := []func(string) string{
		func(s string) string { return "```json\n" + s + "\n```" },
		func(s string) string { return "```\n" + s + "\n```" },
		func(s string) string { return "```JSON\n" + s + "```" },
	}

	for _, body := range bodies {
		want, err := Normalize(body)
		require.NoError(t, err)
		for _, wrap := range wrappers {
			got, err := Normalize(wrap(body))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestParse_Array(t *testing.T) {
	results, err := Parse[[]models.SearchResult]("```json\n[{\"title\":\"t\",\"snippet\":\"s\",\"link\":\"l\",\"source\":\"x\"}]\n```")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "t", results[0].Title)
}

// ==========================
// Generate wrappers
// ==========================

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	req := models.GenerationRequest{Prompt: "p", MaxTokens: 100}

	ok := Generate[[]models.TrendingTopic](ctx, &stubGenerator{text: `[{"topic":"IA"}]`}, req)
	require.True(t, ok.OK())
	assert.Equal(t, "IA", ok.Value[0].Topic)
	assert.Equal(t, `[{"topic":"IA"}]`, ok.Raw)

	bad := Generate[[]models.TrendingTopic](ctx, &stubGenerator{text: "nope"}, req)
	assert.False(t, bad.OK())
	assert.Equal(t, "nope", bad.Raw)
	assert.True(t, errors.Is(bad.Err, apperrors.ErrMalformedResponse))

	failed := Generate[models.Record](ctx, &stubGenerator{err: apperrors.NewProviderUnavailableError()}, req)
	assert.True(t, errors.Is(failed.Err, apperrors.ErrProviderUnavailable))
}

func TestGenerateRecord(t *testing.T) {
	ctx := context.Background()
	log := logger.NewTestLogger(t)
	req := models.GenerationRequest{Prompt: "p", MaxTokens: 100}

	tests := []struct {
		name           string
		gen            *stubGenerator
		validateOutput func(t *testing.T, record models.Record)
	}{
		{
			name: "success",
			gen:  &stubGenerator{text: `{"post":"hola"}`},
			validateOutput: func(t *testing.T, record models.Record) {
				assert.False(t, record.IsError())
				assert.Equal(t, "hola", record.String("post"))
			},
		},
		{
			name: "malformed degrades",
			gen:  &stubGenerator{text: "not json"},
			validateOutput: func(t *testing.T, record models.Record) {
				assert.True(t, record.IsError())
				assert.Len(t, record, 1)
				assert.Contains(t, record.ErrorMessage(), "could not be parsed")
			},
		},
		{
			name: "provider failure degrades",
			gen:  &stubGenerator{err: apperrors.NewProviderUnavailableError()},
			validateOutput: func(t *testing.T, record models.Record) {
				assert.True(t, record.IsError())
				assert.Contains(t, record.ErrorMessage(), "No AI client available")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateOutput(t, GenerateRecord(ctx, tt.gen, req, log))
		})
	}
}
