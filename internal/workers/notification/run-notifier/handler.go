// internal/workers/notification/run-notifier/handler.go
package runnotifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	awsclients "magnet-factory/internal/common/aws"
	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

const (
	TaskType = "run-notifier"
)

type Handler struct {
	config    *Config
	logger    logger.Logger
	sesClient awsclients.SESService
	snsClient awsclients.SNSService
	templates map[string]map[string]string
}

// NewHandler builds the notifier. Either client may be nil, which disables
// that channel.
func NewHandler(config *Config, sesClient awsclients.SESService, snsClient awsclients.SNSService, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		logger:    logger.ForStage(log, TaskType),
		sesClient: sesClient,
		snsClient: snsClient,
		templates: loadTemplates(),
	}
}

// Notify reports a finished run. Channel failures are logged and reflected
// in the output; they never propagate.
func (h *Handler) Notify(ctx context.Context, input *Input) *Output {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	output := &Output{
		NotificationID: uuid.New().String(),
		Email:          StatusDisabled,
		Event:          StatusDisabled,
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}

	notificationType := TypeRunCompleted
	if input.Error != "" {
		notificationType = TypeRunFailed
	}
	data := map[string]interface{}{
		"runId": input.RunID,
		"route": input.Route,
		"title": input.Title,
		"state": input.State,
		"error": input.Error,
		"link":  h.runLink(input.RunID),
	}

	if h.config.EmailEnabled && h.config.ToEmail != "" && h.sesClient != nil {
		tmpl := h.templates[notificationType]
		subject := renderTemplate(tmpl["subject"], data)
		body := renderTemplate(tmpl["body"], data)
		if err := h.sendEmail(ctx, subject, body); err != nil {
			h.logFailure("email", input.RunID, err)
			output.Email = StatusFailed
		} else {
			output.Email = StatusSent
		}
	}

	if h.config.TopicARN != "" && h.snsClient != nil {
		if err := h.publishEvent(ctx, notificationType, input); err != nil {
			h.logFailure("sns", input.RunID, err)
			output.Event = StatusFailed
		} else {
			output.Event = StatusSent
		}
	}

	switch {
	case output.Email == StatusFailed || output.Event == StatusFailed:
		output.Status = StatusFailed
	case output.Email == StatusSent || output.Event == StatusSent:
		output.Status = StatusSent
	default:
		output.Status = StatusDisabled
	}

	h.logger.Info("run notification processed", map[string]interface{}{
		"runId":          input.RunID,
		"notificationId": output.NotificationID,
		"status":         output.Status,
		"email":          output.Email,
		"event":          output.Event,
	})
	return output
}

func (h *Handler) runLink(runID string) string {
	return strings.TrimRight(h.config.PublicURL, "/") + "/api/runs/" + runID
}

func (h *Handler) sendEmail(ctx context.Context, subject, body string) error {
	_, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{h.config.ToEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(h.config.FromEmail),
	})
	return err
}

func (h *Handler) publishEvent(ctx context.Context, notificationType string, input *Input) error {
	payload, err := json.Marshal(Event{
		Type:        notificationType,
		RunID:       input.RunID,
		Route:       input.Route,
		Title:       input.Title,
		State:       input.State,
		Error:       input.Error,
		Link:        h.runLink(input.RunID),
		CompletedAt: input.CompletedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	_, err = h.snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(h.config.TopicARN),
		Subject:  aws.String("magnet-factory " + notificationType),
		Message:  aws.String(string(payload)),
	})
	return err
}

func (h *Handler) logFailure(channel, runID string, err error) {
	stdErr := apperrors.NewNotificationSendFailedError(channel, err)
	h.logger.Error("notification send failed", map[string]interface{}{
		"runId":     runID,
		"channel":   channel,
		"errorCode": string(stdErr.Code),
		"error":     err.Error(),
	})
}

// renderTemplate replaces {{key}} placeholders and drops any left unfilled.
func renderTemplate(tmpl string, data map[string]interface{}) string {
	result := tmpl
	for k, v := range data {
		value := ""
		if v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.ReplaceAll(result, "{{"+k+"}}", value)
	}

	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}
	return result
}

func loadTemplates() map[string]map[string]string {
	return map[string]map[string]string{
		TypeRunCompleted: {
			"subject": "Lead magnet listo: {{title}}",
			"body":    "La ruta {{route}} terminó.\n\nTítulo: {{title}}\nRun: {{runId}}\nResultado: {{link}}",
		},
		TypeRunFailed: {
			"subject": "Run {{runId}} falló",
			"body":    "La ruta {{route}} no pudo completarse.\n\nError: {{error}}\nRun: {{runId}}\nDetalle: {{link}}",
		},
	}
}
