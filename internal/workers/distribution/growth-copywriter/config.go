// internal/workers/distribution/growth-copywriter/config.go
package growthcopywriter

import "time"

type Config struct {
	DefaultTrigger string
	DefaultLink    string
	Timeout        time.Duration
}

func LoadConfig() *Config {
	return &Config{
		DefaultTrigger: "GUÍA",
		DefaultLink:    "[LINK]",
		Timeout:        3 * time.Minute,
	}
}
