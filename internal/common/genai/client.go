// Package genai is the text-generation gateway: one primary provider and
// at most one fallback attempt against the secondary.
package genai

import (
	"context"
	"sync"
	"time"

	"magnet-factory/internal/common/config"
	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/common/metrics"
	"magnet-factory/internal/models"
)

// Provider is one text-generation backend.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req models.GenerationRequest) (string, error)
}

// Client selects between the configured providers. It is safe for
// concurrent use; Refresh swaps providers atomically.
type Client struct {
	mu        sync.RWMutex
	primary   Provider
	secondary Provider
	status    models.ProviderStatus

	// temperature applies to requests that leave Temperature at zero.
	temperature float64

	logger logger.Logger
}

func NewClient(cfg config.ProvidersConfig, log logger.Logger) *Client {
	c := &Client{
		logger: log.With(map[string]interface{}{
			"component": "genai",
		}),
	}
	c.Refresh(cfg)
	return c
}

// Refresh rebuilds the providers from cfg.
func (c *Client) Refresh(cfg config.ProvidersConfig) {
	timeout := config.GetDuration(cfg.Timeout)
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	var openAI, anthropic Provider
	if cfg.OpenAI.APIKey != "" {
		openAI = newOpenAIProvider(cfg.OpenAI, timeout)
	}
	if cfg.Anthropic.APIKey != "" {
		anthropic = newAnthropicProvider(cfg.Anthropic, timeout)
	}

	c.mu.Lock()
	c.temperature = cfg.Temperature
	c.mu.Unlock()

	c.setProviders(cfg.Primary, openAI, anthropic)
}

func (c *Client) setProviders(primaryName string, openAI, anthropic Provider) {
	if primaryName == "" {
		primaryName = config.ProviderOpenAI
	}

	primary, secondary := openAI, anthropic
	if primaryName == config.ProviderAnthropic {
		primary, secondary = anthropic, openAI
	}
	if primary == nil {
		primary, secondary = secondary, nil
	}

	status := models.ProviderStatus{
		Anthropic: availability(anthropic),
		OpenAI:    availability(openAI),
		Primary:   primaryName,
	}

	c.mu.Lock()
	c.primary = primary
	c.secondary = secondary
	c.status = status
	c.mu.Unlock()

	c.logger.Info("generation providers configured", map[string]interface{}{
		"anthropic": status.Anthropic,
		"openai":    status.OpenAI,
		"primary":   status.Primary,
	})
}

func availability(p Provider) string {
	if p == nil {
		return models.ProviderNotConfigured
	}
	return models.ProviderAvailable
}

func (c *Client) Status() models.ProviderStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Available reports whether at least one provider is configured.
func (c *Client) Available() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.primary != nil
}

// Generate calls the primary provider and, on any failure, makes exactly
// one attempt against the secondary when one is configured.
func (c *Client) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	c.mu.RLock()
	primary, secondary := c.primary, c.secondary
	if req.Temperature == 0 {
		req.Temperature = c.temperature
	}
	c.mu.RUnlock()
	req = req.WithDefaults()

	if primary == nil {
		return "", apperrors.NewProviderUnavailableError()
	}

	text, err := c.attempt(ctx, primary, req)
	if err == nil {
		return text, nil
	}
	if secondary == nil {
		return "", apperrors.NewProviderCallFailedError(primary.Name(), err)
	}

	c.logger.Warn("primary provider failed, falling back", map[string]interface{}{
		"from":  primary.Name(),
		"to":    secondary.Name(),
		"error": err.Error(),
	})
	metrics.ProviderFallbacks.WithLabelValues(primary.Name(), secondary.Name()).Inc()

	text, err = c.attempt(ctx, secondary, req)
	if err != nil {
		return "", apperrors.NewProviderCallFailedError(secondary.Name(), err)
	}
	return text, nil
}

func (c *Client) attempt(ctx context.Context, p Provider, req models.GenerationRequest) (string, error) {
	start := time.Now()
	text, err := p.Complete(ctx, req)
	if err != nil {
		metrics.ProviderAttempts.WithLabelValues(p.Name(), "failure").Inc()
		c.logger.Warn("generation attempt failed", map[string]interface{}{
			"provider":   p.Name(),
			"maxTokens":  req.MaxTokens,
			"durationMs": time.Since(start).Milliseconds(),
			"error":      err.Error(),
		})
		return "", err
	}

	metrics.ProviderAttempts.WithLabelValues(p.Name(), "success").Inc()
	c.logger.Debug("generation attempt succeeded", map[string]interface{}{
		"provider":   p.Name(),
		"maxTokens":  req.MaxTokens,
		"durationMs": time.Since(start).Milliseconds(),
		"chars":      len(text),
	})
	return text, nil
}
