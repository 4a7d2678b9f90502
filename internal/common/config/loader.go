// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Load reads configs/config.yaml (optional), merges config.<APP_ENVIRONMENT>.yaml,
// expands ${VAR} placeholders and lets the process environment fill the gaps.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finalize(v, env)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finalize(v, os.Getenv("APP_ENVIRONMENT"))
}

func finalize(v *viper.Viper, env string) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = env
	}

	overrideEmptyConfig(&cfg)
	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				fmt.Printf("loaded .env from: %s\n", path)
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			if expanded := os.ExpandEnv(strVal); expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

// overrideEmptyConfig fills values that are still empty from the plain
// environment variable names the service has always used.
func overrideEmptyConfig(cfg *Config) {
	setIfEmpty(&cfg.Providers.OpenAI.APIKey, "OPENAI_API_KEY")
	setIfEmpty(&cfg.Providers.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	setIfEmpty(&cfg.Providers.Primary, "PRIMARY_AI")
	setIfEmpty(&cfg.Search.Serper.APIKey, "SERPER_API_KEY")
	setIfEmpty(&cfg.Notifications.Email.FromEmail, "FROM_EMAIL")
	setIfEmpty(&cfg.Notifications.Email.ToEmail, "TO_EMAIL")
	setIfEmpty(&cfg.Notifications.SNS.TopicARN, "SNS_TOPIC_ARN")
	setIfEmpty(&cfg.Notifications.AWS.Region, "AWS_REGION")
	setIfEmpty(&cfg.App.PublicURL, "PUBLIC_URL")
	setIfEmpty(&cfg.Database.Redis.Address, "REDIS_ADDRESS")

	if cfg.Server.Port == 0 {
		if val := os.Getenv("PORT"); val != "" {
			if port, err := strconv.Atoi(val); err == nil {
				cfg.Server.Port = port
			}
		}
	}
	if !cfg.Server.Debug {
		cfg.Server.Debug = strings.EqualFold(os.Getenv("DEBUG"), "true")
	}
}

func setIfEmpty(dst *string, envKey string) {
	if *dst != "" {
		return
	}
	if val := os.Getenv(envKey); val != "" {
		*dst = val
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "magnet-factory"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "3.0"
	}
	if cfg.App.PublicURL == "" {
		cfg.App.PublicURL = "http://localhost:5000"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30000
	}

	cfg.Providers.Primary = strings.ToLower(strings.TrimSpace(cfg.Providers.Primary))
	if cfg.Providers.Primary == "" {
		cfg.Providers.Primary = ProviderOpenAI
	}
	if cfg.Providers.Timeout == 0 {
		cfg.Providers.Timeout = 120000
	}
	if cfg.Providers.Temperature == 0 {
		cfg.Providers.Temperature = 0.7
	}
	if cfg.Providers.OpenAI.BaseURL == "" {
		cfg.Providers.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Providers.OpenAI.Model == "" {
		cfg.Providers.OpenAI.Model = "gpt-4o"
	}
	if cfg.Providers.Anthropic.BaseURL == "" {
		cfg.Providers.Anthropic.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Providers.Anthropic.Model == "" {
		cfg.Providers.Anthropic.Model = "claude-sonnet-4-20250514"
	}
	if cfg.Providers.Anthropic.Version == "" {
		cfg.Providers.Anthropic.Version = "2023-06-01"
	}

	if cfg.Search.Serper.BaseURL == "" {
		cfg.Search.Serper.BaseURL = "https://google.serper.dev"
	}
	if cfg.Search.Serper.GL == "" {
		cfg.Search.Serper.GL = "us"
	}
	if cfg.Search.Serper.HL == "" {
		cfg.Search.Serper.HL = "es"
	}
	if cfg.Search.Timeout == 0 {
		cfg.Search.Timeout = 15000
	}
	if cfg.Search.Concurrency == 0 {
		cfg.Search.Concurrency = 3
	}
	if cfg.Search.CacheTTL == 0 {
		cfg.Search.CacheTTL = 3600
	}

	if cfg.Images.Model == "" {
		cfg.Images.Model = "dall-e-3"
	}
	if cfg.Images.Quality == "" {
		cfg.Images.Quality = "standard"
	}
	if cfg.Images.Timeout == 0 {
		cfg.Images.Timeout = 120000
	}

	if cfg.Pipeline.RunHistory == 0 {
		cfg.Pipeline.RunHistory = 50
	}
	if cfg.Pipeline.RunTimeout == 0 {
		cfg.Pipeline.RunTimeout = 900000
	}

	if cfg.Notifications.Email.FromEmail == "" {
		cfg.Notifications.Email.FromEmail = "onboarding@faststrat.io"
	}
	if cfg.Notifications.AWS.Region == "" {
		cfg.Notifications.AWS.Region = "us-east-1"
	}
	if cfg.Notifications.Timeout == 0 {
		cfg.Notifications.Timeout = 10000
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = 1.0
	}
}

// validateConfig validates critical configuration fields. Missing provider
// keys are not an error: generation then fails per call with
// PROVIDER_UNAVAILABLE.
func validateConfig(cfg *Config) error {
	switch cfg.Providers.Primary {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("providers.primary must be %q or %q, got %q", ProviderOpenAI, ProviderAnthropic, cfg.Providers.Primary)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}

	if cfg.Search.Concurrency < 1 {
		return fmt.Errorf("search.concurrency must be >= 1")
	}

	if cfg.Notifications.Email.Enabled && cfg.Notifications.Email.ToEmail == "" {
		return fmt.Errorf("notifications.email.to_email is required when email notifications are enabled")
	}
	if cfg.Notifications.SNS.Enabled && cfg.Notifications.SNS.TopicARN == "" {
		return fmt.Errorf("notifications.sns.topic_arn is required when SNS notifications are enabled")
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		return fmt.Errorf("tracing.endpoint is required when tracing is enabled")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
