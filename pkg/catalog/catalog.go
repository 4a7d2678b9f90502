// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

const Version = "3.0.0"

// Default returns the built-in catalog.
func Default() *FormatCatalog {
	return &FormatCatalog{
		Version:     Version,
		LastUpdated: "2026-01-15T00:00:00Z",
		Formats: []Format{
			{
				ID: "carousel", DisplayName: "Carousel LinkedIn",
				Description: "8-12 slides para LinkedIn con contenido visual",
				BestFor:     "Engagement rápido, viralidad",
				MaxTokens:   2500, TitleKey: "carousel_title",
				OutputSchema: recordSchema("carousel_title", map[string]interface{}{
					"slides": arrayOf(objectWith("title", "body")),
				}),
			},
			{
				ID: "guide", DisplayName: "Guía/Ebook PDF",
				Description: "Documento de 5-15 páginas con contenido profundo",
				BestFor:     "Autoridad, leads calificados",
				MaxTokens:   4000, TitleKey: "guide_title",
				OutputSchema: recordSchema("guide_title", map[string]interface{}{
					"sections": arrayOf(objectWith("title", "content")),
				}),
			},
			{
				ID: "checklist", DisplayName: "Checklist Accionable",
				Description: "Lista de 15-25 items verificables",
				BestFor:     "Implementación rápida, valor inmediato",
				MaxTokens:   2500, TitleKey: "checklist_title",
				OutputSchema: recordSchema("checklist_title", map[string]interface{}{
					"categories": arrayOf(objectWith("category_name", "items")),
				}),
			},
			{
				ID: "template", DisplayName: "Template/Plantilla",
				Description: "Documento listo para usar y personalizar",
				BestFor:     "Ahorro de tiempo, practicidad",
				MaxTokens:   3000, TitleKey: "template_title",
				OutputSchema: recordSchema("template_title", map[string]interface{}{
					"sections": arrayOf(objectWith("section_name")),
				}),
			},
			{
				ID: "minicourse", DisplayName: "Mini-Curso (5 emails)",
				Description: "Secuencia de 5 emails educativos",
				BestFor:     "Nurturing, educación profunda",
				MaxTokens:   5000, TitleKey: "course_title",
				OutputSchema: recordSchema("course_title", map[string]interface{}{
					"emails": arrayOf(objectWith("subject", "content")),
				}),
			},
			{
				ID: "worksheet", DisplayName: "Worksheet/Hoja de Trabajo",
				Description: "Ejercicios prácticos para completar",
				BestFor:     "Autodiagnóstico, reflexión",
				MaxTokens:   4000, TitleKey: "worksheet_title",
				OutputSchema: recordSchema("worksheet_title", map[string]interface{}{
					"exercises": arrayOf(objectWith("title", "instructions")),
				}),
			},
			{
				ID: "swipefile", DisplayName: "Swipe File",
				Description: "Colección de ejemplos listos para copiar",
				BestFor:     "Inspiración, referencia rápida",
				MaxTokens:   4500, TitleKey: "swipefile_title",
				OutputSchema: recordSchema("swipefile_title", map[string]interface{}{
					"categories": arrayOf(objectWith("category_name", "swipes")),
				}),
			},
			{
				ID: "casestudy", DisplayName: "Caso de Estudio",
				Description: "Análisis detallado de un caso real",
				BestFor:     "Prueba social, credibilidad",
				MaxTokens:   4000, TitleKey: "case_study_title",
				OutputSchema: recordSchema("case_study_title", map[string]interface{}{
					"challenge": map[string]interface{}{"type": "object"},
					"solution":  map[string]interface{}{"type": "object"},
					"results":   map[string]interface{}{"type": "object"},
				}),
			},
			{
				ID: "toolkit", DisplayName: "Toolkit/Kit de Herramientas",
				Description: "Colección de recursos y herramientas",
				BestFor:     "Valor completo, recurso de referencia",
				MaxTokens:   5000, TitleKey: "toolkit_title",
				OutputSchema: recordSchema("toolkit_title", map[string]interface{}{
					"tools": arrayOf(objectWith("tool_name", "content")),
				}),
			},
			{
				ID: "cheatsheet", DisplayName: "Cheat Sheet",
				Description: "Resumen de 1-2 páginas con lo esencial",
				BestFor:     "Referencia rápida, fácil de consumir",
				MaxTokens:   3000, TitleKey: "cheatsheet_title",
				OutputSchema: recordSchema("cheatsheet_title", map[string]interface{}{
					"sections": arrayOf(objectWith("section_name")),
				}),
			},
			{
				ID: "datareport", DisplayName: "Reporte de Datos",
				Description: "Reporte de industria con estadísticas citadas y recomendaciones",
				BestFor:     "Autoridad basada en datos",
				MaxTokens:   4000, TitleKey: "report_title",
				OutputSchema: recordSchema("report_title", map[string]interface{}{
					"sections":        arrayOf(objectWith("section_title")),
					"recommendations": map[string]interface{}{"type": "array"},
				}),
			},
		},
	}
}

func recordSchema(titleKey string, fields map[string]interface{}) map[string]interface{} {
	required := []interface{}{titleKey}
	properties := map[string]interface{}{
		titleKey: map[string]interface{}{"type": "string", "minLength": 1},
	}
	for name, schema := range fields {
		required = append(required, name)
		properties[name] = schema
	}
	return map[string]interface{}{
		"type":       "object",
		"required":   required,
		"properties": properties,
	}
}

func arrayOf(items map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":     "array",
		"minItems": 1,
		"items":    items,
	}
}

func objectWith(keys ...string) map[string]interface{} {
	required := make([]interface{}, len(keys))
	for i, k := range keys {
		required[i] = k
	}
	return map[string]interface{}{
		"type":     "object",
		"required": required,
	}
}

// LoadCatalog reads a catalog JSON file.
func LoadCatalog(path string) (*FormatCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c FormatCatalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return &c, nil
}

// LoadOrDefault returns the catalog at path, or the built-in one when path
// is empty.
func LoadOrDefault(path string) (*FormatCatalog, error) {
	if path == "" {
		return Default(), nil
	}
	c, err := LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the catalog as indented JSON, creating parent directories.
func (c *FormatCatalog) Save(path string) error {
	c.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

func (c *FormatCatalog) Lookup(id string) (Format, bool) {
	for _, f := range c.Formats {
		if f.ID == id {
			return f, true
		}
	}
	return Format{}, false
}

// IDs returns format identifiers in catalog order.
func (c *FormatCatalog) IDs() []string {
	ids := make([]string, len(c.Formats))
	for i, f := range c.Formats {
		ids[i] = f.ID
	}
	return ids
}

// Validate checks required fields, duplicate IDs and that every output
// schema compiles.
func (c *FormatCatalog) Validate() error {
	if len(c.Formats) == 0 {
		return fmt.Errorf("catalog contains no formats")
	}

	ids := make(map[string]bool)
	for _, f := range c.Formats {
		if f.ID == "" {
			return fmt.Errorf("format missing required field: id")
		}
		if ids[f.ID] {
			return fmt.Errorf("duplicate format ID: %s", f.ID)
		}
		ids[f.ID] = true

		if f.DisplayName == "" {
			return fmt.Errorf("format %s missing required field: displayName", f.ID)
		}
		if f.TitleKey == "" {
			return fmt.Errorf("format %s missing required field: titleKey", f.ID)
		}
		if f.MaxTokens <= 0 {
			return fmt.Errorf("format %s has invalid maxTokens: %d", f.ID, f.MaxTokens)
		}
		if len(f.OutputSchema) > 0 {
			if _, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(f.OutputSchema)); err != nil {
				return fmt.Errorf("format %s has invalid outputSchema: %w", f.ID, err)
			}
		}
	}
	return nil
}
