// pkg/catalog/schema.go
package catalog

// FormatCatalog lists the content formats the factory can produce.
type FormatCatalog struct {
	Version     string   `json:"version"`
	LastUpdated string   `json:"lastUpdated"`
	Formats     []Format `json:"formats"`
}

type Format struct {
	ID           string                 `json:"id"`
	DisplayName  string                 `json:"displayName"`
	Description  string                 `json:"description"`
	BestFor      string                 `json:"bestFor"`
	MaxTokens    int                    `json:"maxTokens"`
	TitleKey     string                 `json:"titleKey"`
	OutputSchema map[string]interface{} `json:"outputSchema"`
}
