// internal/api/requests.go
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/validation"
	"magnet-factory/internal/models"
	"magnet-factory/internal/pipeline"
)

const maxBodyBytes = 1 << 20

func stringProp() map[string]interface{} {
	return map[string]interface{}{"type": "string"}
}

func objectProp() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}

var (
	generateSchema = map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"route":      stringProp(),
			"format":     stringProp(),
			"topic":      stringProp(),
			"pain_point": stringProp(),
			"industry":   stringProp(),
		},
	}

	researchSchema = map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"topic": stringProp(),
		},
	}

	distributionSchema = map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"content":  objectProp(),
			"carousel": objectProp(),
			"title":    stringProp(),
			"link":     stringProp(),
		},
	}

	carouselVisualsSchema = map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"carousel"},
		"properties": map[string]interface{}{
			"carousel": objectProp(),
		},
	}
)

type generateRequest struct {
	Route     string `json:"route"`
	Format    string `json:"format"`
	Topic     string `json:"topic"`
	PainPoint string `json:"pain_point"`
	Industry  string `json:"industry"`
}

func (g generateRequest) pipelineRequest() pipeline.Request {
	return pipeline.Request{
		Route:     models.Route(g.Route),
		Format:    models.FormatType(g.Format),
		Topic:     g.Topic,
		PainPoint: g.PainPoint,
		Industry:  g.Industry,
	}
}

type researchRequest struct {
	Topic string `json:"topic"`
}

type distributionRequest struct {
	Content  models.Record `json:"content"`
	Carousel models.Record `json:"carousel"`
	Title    string        `json:"title"`
	Link     string        `json:"link"`
}

type carouselVisualsRequest struct {
	Carousel models.Record `json:"carousel"`
}

// decodeBody reads a JSON object into dst after checking it against schema.
// A missing or malformed body counts as {}.
func decodeBody(r *http.Request, schema map[string]interface{}, dst interface{}) error {
	doc := map[string]interface{}{}
	if r.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err == nil && len(raw) > 0 {
			var parsed map[string]interface{}
			if json.Unmarshal(raw, &parsed) == nil && parsed != nil {
				doc = parsed
			}
		}
	}

	result, err := validation.ValidateDocument(schema, doc)
	if err != nil {
		return err
	}
	if !result.Valid {
		return apperrors.NewInvalidRequestError(strings.Join(result.GetErrorMessages(), "; "))
	}

	if err := models.Record(doc).Decode(dst); err != nil {
		return apperrors.NewInvalidRequestError(err.Error())
	}
	return nil
}
