// internal/workers/notification/run-notifier/config.go
package runnotifier

import (
	"time"

	"magnet-factory/internal/common/config"
)

type Config struct {
	EmailEnabled bool
	FromEmail    string
	ToEmail      string
	TopicARN     string
	PublicURL    string
	Timeout      time.Duration
}

// LoadConfig maps the notification section onto the notifier. SNS events
// are published only when enabled with a topic ARN.
func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		EmailEnabled: cfg.Notifications.Email.Enabled,
		FromEmail:    cfg.Notifications.Email.FromEmail,
		ToEmail:      cfg.Notifications.Email.ToEmail,
		PublicURL:    cfg.App.PublicURL,
		Timeout:      config.GetDuration(cfg.Notifications.Timeout),
	}
	if cfg.Notifications.SNS.Enabled {
		c.TopicARN = cfg.Notifications.SNS.TopicARN
	}
	return c
}
