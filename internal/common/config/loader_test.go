// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the plain variables overrideEmptyConfig falls back to.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "PRIMARY_AI", "SERPER_API_KEY",
		"FROM_EMAIL", "TO_EMAIL", "SNS_TOPIC_ARN", "AWS_REGION", "PUBLIC_URL",
		"REDIS_ADDRESS", "PORT", "DEBUG", "APP_ENVIRONMENT",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(writeConfig(t, "app:\n  name: test-factory\n"))
	require.NoError(t, err)

	assert.Equal(t, "test-factory", cfg.App.Name)
	assert.Equal(t, "3.0", cfg.App.Version)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, ProviderOpenAI, cfg.Providers.Primary)
	assert.Equal(t, "gpt-4o", cfg.Providers.OpenAI.Model)
	assert.Equal(t, "2023-06-01", cfg.Providers.Anthropic.Version)
	assert.Equal(t, 3, cfg.Search.Concurrency)
	assert.Equal(t, "dall-e-3", cfg.Images.Model)
	assert.Equal(t, 50, cfg.Pipeline.RunHistory)
	assert.Equal(t, 900000, cfg.Pipeline.RunTimeout)
	assert.Equal(t, "us-east-1", cfg.Notifications.AWS.Region)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestLoadFromFile_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MF_TEST_SERPER_KEY", "serper-123")
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("PRIMARY_AI", " Anthropic ")
	t.Setenv("PORT", "8081")

	cfg, err := LoadFromFile(writeConfig(t, "search:\n  serper:\n    api_key: ${MF_TEST_SERPER_KEY}\n"))
	require.NoError(t, err)

	assert.Equal(t, "serper-123", cfg.Search.Serper.APIKey)
	assert.Equal(t, "sk-openai", cfg.Providers.OpenAI.APIKey)
	assert.Equal(t, ProviderAnthropic, cfg.Providers.Primary)
	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestLoadFromFile_FileWinsOverPlainEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")

	cfg, err := LoadFromFile(writeConfig(t, "server:\n  port: 9000\n"))
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown primary provider",
			yaml:    "providers:\n  primary: gemini\n",
			wantErr: "providers.primary",
		},
		{
			name:    "port out of range",
			yaml:    "server:\n  port: 70000\n",
			wantErr: "server.port",
		},
		{
			name:    "negative concurrency",
			yaml:    "search:\n  concurrency: -1\n",
			wantErr: "search.concurrency",
		},
		{
			name:    "email without recipient",
			yaml:    "notifications:\n  email:\n    enabled: true\n",
			wantErr: "to_email",
		},
		{
			name:    "sns without topic",
			yaml:    "notifications:\n  sns:\n    enabled: true\n",
			wantErr: "topic_arn",
		},
		{
			name:    "tracing without endpoint",
			yaml:    "tracing:\n  enabled: true\n",
			wantErr: "tracing.endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := LoadFromFile(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	clearEnv(t)
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
	assert.Equal(t, ":5000", ServerConfig{Port: 5000}.Addr())
}
