// Package errors provides the standardized error taxonomy shared by the
// generation gateway, the pipeline stages and the HTTP layer.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Generation gateway
	ErrCodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	ErrCodeProviderCallFailed  ErrorCode = "PROVIDER_CALL_FAILED"
	ErrCodeMalformedResponse   ErrorCode = "MALFORMED_RESPONSE"

	// Content routing
	ErrCodeUnknownFormat ErrorCode = "UNKNOWN_FORMAT"
	ErrCodeInvalidRoute  ErrorCode = "INVALID_ROUTE"

	// Research
	ErrCodeSearchUnavailable ErrorCode = "SEARCH_UNAVAILABLE"
	ErrCodeResearchFailed    ErrorCode = "RESEARCH_FAILED"
	ErrCodeNoTrendsFound     ErrorCode = "NO_TRENDS_FOUND"

	// Visuals
	ErrCodeImageGenerationFailed ErrorCode = "IMAGE_GENERATION_FAILED"

	// Runs and API
	ErrCodeRunNotFound            ErrorCode = "RUN_NOT_FOUND"
	ErrCodeInvalidRequest         ErrorCode = "INVALID_REQUEST"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// Is matches any StandardError carrying the same code, so the sentinels
// below work with errors.Is.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrProviderUnavailable   = &StandardError{Code: ErrCodeProviderUnavailable}
	ErrProviderCallFailed    = &StandardError{Code: ErrCodeProviderCallFailed}
	ErrMalformedResponse     = &StandardError{Code: ErrCodeMalformedResponse}
	ErrUnknownFormat         = &StandardError{Code: ErrCodeUnknownFormat}
	ErrInvalidRoute          = &StandardError{Code: ErrCodeInvalidRoute}
	ErrSearchUnavailable     = &StandardError{Code: ErrCodeSearchUnavailable}
	ErrResearchFailed        = &StandardError{Code: ErrCodeResearchFailed}
	ErrNoTrendsFound         = &StandardError{Code: ErrCodeNoTrendsFound}
	ErrImageGenerationFailed = &StandardError{Code: ErrCodeImageGenerationFailed}
	ErrRunNotFound           = &StandardError{Code: ErrCodeRunNotFound}
)

// ==========================
// 2. Error Constructors
// ==========================

// NewProviderUnavailableError is returned before any network call when no
// generation backend is configured.
func NewProviderUnavailableError() *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderUnavailable,
		Message:   "No AI client available. Configure ANTHROPIC_API_KEY or OPENAI_API_KEY",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderCallFailedError wraps an upstream provider failure.
func NewProviderCallFailedError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderCallFailed,
		Message:   "Generation provider call failed",
		Details:   fmt.Sprintf("provider: %s, error: %v", provider, err),
		Retryable: true,
		Metadata:  map[string]interface{}{"provider": provider},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewMalformedResponseError reports generated text that could not be parsed.
// The raw text is kept in Metadata.
func NewMalformedResponseError(raw string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedResponse,
		Message:   "Generated response could not be parsed",
		Details:   fmt.Sprintf("error: %v", err),
		Retryable: true,
		Metadata:  map[string]interface{}{"raw": raw},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewUnknownFormatError(format string, valid []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownFormat,
		Message:   fmt.Sprintf("Unknown format: %s. Available: %s", format, strings.Join(valid, ", ")),
		Details:   fmt.Sprintf("format: %s", format),
		Retryable: false,
		Metadata:  map[string]interface{}{"available": valid},
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidRouteError(route string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRoute,
		Message:   "Invalid route",
		Details:   fmt.Sprintf("route: %q", route),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchUnavailableError marks a search backend failure. It is recovered
// by the simulated search and never surfaces to a run's caller.
func NewSearchUnavailableError(reason string, err error) *StandardError {
	details := reason
	if err != nil {
		details = fmt.Sprintf("%s: %v", reason, err)
	}
	return &StandardError{
		Code:      ErrCodeSearchUnavailable,
		Message:   "Search backend unavailable",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewResearchFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResearchFailed,
		Message:   "Research stage produced no usable data",
		Details:   fmt.Sprintf("operation: %s, error: %v", operation, err),
		Retryable: IsRetryable(err),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewNoTrendsFoundError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoTrendsFound,
		Message:   "No trends found",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewImageGenerationFailedError(visualType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeImageGenerationFailed,
		Message:   "Image generation failed",
		Details:   fmt.Sprintf("type: %s, error: %v", visualType, err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewRunNotFoundError(runID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRunNotFound,
		Message:   "Run not found",
		Details:   fmt.Sprintf("runId: %s", runID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification send failed",
		Details:   fmt.Sprintf("channel: %s, error: %v", channel, err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// WithCause attaches an underlying error to a StandardError built by hand.
func (e *StandardError) WithCause(err error) *StandardError {
	e.cause = err
	return e
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError returns err as a *StandardError, wrapping unknown errors
// as INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// CodeOf returns the error code of err, or INTERNAL_ERROR.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	return AsStandardError(err).Code
}

// MessageOf returns a short human-readable description of err, suitable
// for an {"error": ...} record.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var stdErr *StandardError
	if !stderrors.As(err, &stdErr) {
		return err.Error()
	}
	if stdErr.Details != "" {
		return stdErr.Message + ": " + stdErr.Details
	}
	return stdErr.Message
}

func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "PROVIDER") || strings.Contains(codeStr, "MALFORMED"):
		return "AI"
	case strings.Contains(codeStr, "SEARCH") || strings.Contains(codeStr, "RESEARCH") || strings.Contains(codeStr, "TRENDS"):
		return "RESEARCH"
	case strings.Contains(codeStr, "IMAGE"):
		return "VISUAL"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "UNKNOWN"):
		return "VALIDATION"
	case strings.Contains(codeStr, "RUN"):
		return "RUN"
	default:
		return "OTHER"
	}
}
