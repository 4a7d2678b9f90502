// internal/common/genai/openai.go
package genai

import (
	"context"
	"errors"
	"strings"
	"time"

	"magnet-factory/internal/common/config"
	httpclient "magnet-factory/internal/common/http"
	"magnet-factory/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(cfg config.ProviderConfig, timeout time.Duration) *openAIProvider {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = httpclient.NewClient(timeout)

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(oc),
		model:  model,
	}
}

func (p *openAIProvider) Name() string { return config.ProviderOpenAI }

func (p *openAIProvider) Complete(ctx context.Context, req models.GenerationRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
