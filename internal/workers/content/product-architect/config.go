// internal/workers/content/product-architect/config.go
package productarchitect

import "time"

type Config struct {
	DefaultPages        int
	DefaultTemplateType string
	DefaultSwipeType    string
	ValidateOutput      bool
	Timeout             time.Duration
}

func LoadConfig() *Config {
	return &Config{
		DefaultPages:        7,
		DefaultTemplateType: "strategy",
		DefaultSwipeType:    "copy",
		ValidateOutput:      true,
		Timeout:             5 * time.Minute,
	}
}
