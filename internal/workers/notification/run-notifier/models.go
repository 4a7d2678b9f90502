// internal/workers/notification/run-notifier/models.go
package runnotifier

import "time"

type Input struct {
	RunID       string    `json:"runId"`
	Route       string    `json:"route"`
	Title       string    `json:"title"`
	State       string    `json:"state"`
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	Email          string `json:"email"`
	Event          string `json:"event"`
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Event is the JSON document published to SNS.
type Event struct {
	Type        string `json:"type"`
	RunID       string `json:"run_id"`
	Route       string `json:"route"`
	Title       string `json:"title"`
	State       string `json:"state"`
	Error       string `json:"error,omitempty"`
	Link        string `json:"link"`
	CompletedAt string `json:"completed_at"`
}

// Notification types
const (
	TypeRunCompleted = "run_completed"
	TypeRunFailed    = "run_failed"
)

// Statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
