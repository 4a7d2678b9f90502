// internal/common/genai/anthropic.go
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"magnet-factory/internal/common/config"
	httpclient "magnet-factory/internal/common/http"
	"magnet-factory/internal/models"

	"github.com/go-resty/resty/v2"
)

const defaultAnthropicVersion = "2023-06-01"

type anthropicProvider struct {
	client  *resty.Client
	apiURL  string
	apiKey  string
	model   string
	version string
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func newAnthropicProvider(cfg config.ProviderConfig, timeout time.Duration) *anthropicProvider {
	apiURL := strings.TrimRight(cfg.BaseURL, "/")
	if apiURL == "" {
		apiURL = "https://api.anthropic.com"
	}
	version := cfg.Version
	if version == "" {
		version = defaultAnthropicVersion
	}

	return &anthropicProvider{
		client:  httpclient.NewResty(timeout),
		apiURL:  apiURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		version: version,
	}
}

func (p *anthropicProvider) Name() string { return config.ProviderAnthropic }

func (p *anthropicProvider) Complete(ctx context.Context, req models.GenerationRequest) (string, error) {
	if p.model == "" {
		return "", errors.New("anthropic: model is required")
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", p.apiKey).
		SetHeader("anthropic-version", p.version).
		SetBody(anthropicRequest{
			Model:       p.model,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
			Messages:    []anthropicMessage{{Role: "user", Content: req.Prompt}},
		}).
		Post(p.apiURL + "/v1/messages")
	if err != nil {
		return "", fmt.Errorf("anthropic: request failed: %w", err)
	}

	var out anthropicResponse
	decodeErr := json.Unmarshal(resp.Body(), &out)

	if resp.StatusCode() != http.StatusOK {
		if decodeErr == nil && out.Error != nil {
			return "", fmt.Errorf("anthropic: status %d: %s", resp.StatusCode(), out.Error.Message)
		}
		return "", fmt.Errorf("anthropic: unexpected status %d", resp.StatusCode())
	}
	if decodeErr != nil {
		return "", fmt.Errorf("anthropic: decode response: %w", decodeErr)
	}

	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("anthropic: response has no text content")
}
