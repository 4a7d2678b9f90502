// Package imagegen generates images through the OpenAI images API.
package imagegen

import (
	"context"
	"errors"
	"strings"

	"magnet-factory/internal/common/config"
	httpclient "magnet-factory/internal/common/http"
	"magnet-factory/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

var ErrNotConfigured = errors.New("image generation requires OPENAI_API_KEY")

// Generator returns the URL of one generated image.
type Generator interface {
	GenerateImage(ctx context.Context, req models.ImageRequest) (string, error)
}

type Client struct {
	client  *openai.Client
	model   string
	quality string
}

// NewClient builds the image client on the OpenAI provider credentials.
// With no API key every call fails with ErrNotConfigured.
func NewClient(provider config.ProviderConfig, cfg config.ImagesConfig) *Client {
	c := &Client{
		model:   cfg.Model,
		quality: cfg.Quality,
	}
	if c.model == "" {
		c.model = openai.CreateImageModelDallE3
	}
	if c.quality == "" {
		c.quality = openai.CreateImageQualityStandard
	}
	if provider.APIKey == "" {
		return c
	}

	oc := openai.DefaultConfig(provider.APIKey)
	if provider.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(provider.BaseURL, "/")
	}
	oc.HTTPClient = httpclient.NewClient(config.GetDuration(cfg.Timeout))
	c.client = openai.NewClientWithConfig(oc)
	return c
}

func (c *Client) GenerateImage(ctx context.Context, req models.ImageRequest) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          c.model,
		Size:           req.Size,
		Quality:        c.quality,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New("openai: image response has no url")
	}
	return resp.Data[0].URL, nil
}
