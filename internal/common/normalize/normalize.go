// Package normalize turns loosely formatted model output into structured
// records. Every stage goes through Generate or GenerateRecord so the
// failure policy lives here.
package normalize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"
)

const fence = "```"

// MalformedResponseError carries the raw text that failed to parse.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, apperrors.ErrMalformedResponse) hold.
func (e *MalformedResponseError) Is(target error) bool {
	t, ok := target.(*apperrors.StandardError)
	return ok && t.Code == apperrors.ErrCodeMalformedResponse
}

// As lets apperrors.AsStandardError see the MALFORMED_RESPONSE code.
func (e *MalformedResponseError) As(target interface{}) bool {
	p, ok := target.(**apperrors.StandardError)
	if !ok {
		return false
	}
	*p = apperrors.NewMalformedResponseError(e.Raw, e.Err)
	return true
}

// Strip trims the text and removes a surrounding code fence together with
// an optional language tag after the opening fence.
func Strip(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, fence) {
		return text
	}

	text = text[len(fence):]
	tagEnd := 0
	for tagEnd < len(text) && isTagChar(text[tagEnd]) {
		tagEnd++
	}
	if tagEnd > 0 && tagEnd < len(text) && (isSpace(text[tagEnd]) || isJSONStart(text[tagEnd])) {
		text = text[tagEnd:]
	}

	if idx := strings.LastIndex(text, fence); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

func isTagChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-' || c == '+'
}

func isJSONStart(c byte) bool {
	return c == '{' || c == '['
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

// Parse strips raw and decodes it into T.
func Parse[T any](raw string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(Strip(raw)), &out); err != nil {
		var zero T
		return zero, &MalformedResponseError{Raw: raw, Err: err}
	}
	return out, nil
}

// Normalize parses raw into a Record. Anything other than a JSON object is
// malformed.
func Normalize(raw string) (models.Record, error) {
	record, err := Parse[models.Record](raw)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &MalformedResponseError{Raw: raw, Err: fmt.Errorf("expected a JSON object")}
	}
	return record, nil
}

// Generator is the text-generation capability used by the stages.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (string, error)
}

// Result is the outcome of a generate-then-parse call.
type Result[T any] struct {
	Value T
	Raw   string
	Err   error
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Generate calls gen and parses the text into T.
func Generate[T any](ctx context.Context, gen Generator, req models.GenerationRequest) Result[T] {
	raw, err := gen.Generate(ctx, req)
	if err != nil {
		return Result[T]{Err: err}
	}
	value, err := Parse[T](raw)
	return Result[T]{Value: value, Raw: raw, Err: err}
}

// GenerateRecord calls gen, normalizes the text and degrades any failure
// to an {"error": msg} record.
func GenerateRecord(ctx context.Context, gen Generator, req models.GenerationRequest, log logger.Logger) models.Record {
	raw, err := gen.Generate(ctx, req)
	if err == nil {
		var record models.Record
		if record, err = Normalize(raw); err == nil {
			return record
		}
	}

	log.Error("generation degraded to error record", map[string]interface{}{
		"errorCode": string(apperrors.CodeOf(err)),
		"error":     err.Error(),
		"maxTokens": req.MaxTokens,
	})
	return models.ErrorRecord(apperrors.MessageOf(err))
}
