// internal/models/generation.go
package models

const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)

// GenerationRequest is one text-generation call.
type GenerationRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
}

// WithDefaults fills zero MaxTokens and Temperature.
func (r GenerationRequest) WithDefaults() GenerationRequest {
	if r.MaxTokens <= 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	if r.Temperature == 0 {
		r.Temperature = DefaultTemperature
	}
	return r
}

const (
	ProviderAvailable     = "available"
	ProviderNotConfigured = "not configured"
)

// ProviderStatus reports which generation backends are configured.
type ProviderStatus struct {
	Anthropic string `json:"anthropic"`
	OpenAI    string `json:"openai"`
	Primary   string `json:"primary"`
}

// ImageRequest is one image-generation call. Size is "WIDTHxHEIGHT".
type ImageRequest struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

const (
	SizeSquare    = "1024x1024"
	SizePortrait  = "1024x1792"
	SizeLandscape = "1792x1024"
)
