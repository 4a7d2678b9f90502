// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Providers     ProvidersConfig    `mapstructure:"providers"`
	Search        SearchConfig       `mapstructure:"search"`
	Images        ImagesConfig       `mapstructure:"images"`
	Pipeline      PipelineConfig     `mapstructure:"pipeline"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Tracing       TracingConfig      `mapstructure:"tracing"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	PublicURL   string `mapstructure:"public_url"`
}

type ServerConfig struct {
	Port            int  `mapstructure:"port"`
	Debug           bool `mapstructure:"debug"`
	ShutdownTimeout int  `mapstructure:"shutdown_timeout"` // milliseconds
}

// --- Generation providers ---

// ProvidersConfig selects the text generation backends. A provider is
// available only when its API key is set.
type ProvidersConfig struct {
	Primary     string         `mapstructure:"primary"`
	Timeout     int            `mapstructure:"timeout"` // milliseconds
	Temperature float64        `mapstructure:"temperature"`
	OpenAI      ProviderConfig `mapstructure:"openai"`
	Anthropic   ProviderConfig `mapstructure:"anthropic"`
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	Version string `mapstructure:"version"` // anthropic-version header
}

// --- Research ---
type SearchConfig struct {
	Serper struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
		GL      string `mapstructure:"gl"`
		HL      string `mapstructure:"hl"`
	} `mapstructure:"serper"`
	Timeout     int  `mapstructure:"timeout"` // milliseconds
	Concurrency int  `mapstructure:"concurrency"`
	CacheTTL    int  `mapstructure:"cache_ttl"` // seconds, 0 disables caching
	CacheEnable bool `mapstructure:"cache_enabled"`
}

// --- Visuals ---
type ImagesConfig struct {
	Model   string `mapstructure:"model"`
	Quality string `mapstructure:"quality"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// --- Orchestration ---
type PipelineConfig struct {
	RunHistory  int    `mapstructure:"run_history"`
	CatalogPath string `mapstructure:"catalog_path"`
	RunTimeout  int    `mapstructure:"run_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NotificationConfig holds settings for the run-completed notifier.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
		ToEmail   string `mapstructure:"to_email"`
	} `mapstructure:"email"`
	SNS struct {
		Enabled  bool   `mapstructure:"enabled"`
		TopicARN string `mapstructure:"topic_arn"`
	} `mapstructure:"sns"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
	Timeout int `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}
