// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
)

// ResponseHandler turns errors into the HTTP failure body. Provider-side
// failures never become 5xx responses: the body always carries
// success=false with the error code.
type ResponseHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewResponseHandler(logger Logger) *ResponseHandler {
	return &ResponseHandler{logger: logger}
}

// FailureBody is the JSON shape written for a failed request.
type FailureBody struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Code    ErrorCode `json:"code"`
	RunID   string    `json:"run_id,omitempty"`
}

// Body normalizes err and builds the failure body.
func (h *ResponseHandler) Body(err error, runID string) FailureBody {
	stdErr := AsStandardError(err)
	return FailureBody{
		Success: false,
		Error:   stdErr.Message,
		Code:    stdErr.Code,
		RunID:   runID,
	}
}

// HandleError logs err and writes the failure body with status 200.
func (h *ResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error, runID string) {
	stdErr := AsStandardError(err)

	h.logger.Error("request failed", map[string]interface{}{
		"path":          r.URL.Path,
		"method":        r.Method,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"runId":         runID,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(h.Body(err, runID))
}
