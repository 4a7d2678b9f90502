// internal/workers/research/market-intel/config.go
package marketintel

import "time"

type Config struct {
	ResultsPerQuery int
	PainResults     int
	Timeout         time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ResultsPerQuery: 3,
		PainResults:     5,
		Timeout:         3 * time.Minute,
	}
}
