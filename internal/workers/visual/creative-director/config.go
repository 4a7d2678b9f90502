// internal/workers/visual/creative-director/config.go
package creativedirector

import "time"

type Config struct {
	Style   string
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 2 * time.Minute,
	}
}
