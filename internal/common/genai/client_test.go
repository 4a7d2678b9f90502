// internal/common/genai/client_test.go
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"magnet-factory/internal/common/config"
	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helpers
// ==========================

// recordingLogger keeps warnings so fallback logging can be asserted.
type recordingLogger struct {
	mu    *sync.Mutex
	warns *[]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, warns: &[]string{}}
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.warns = append(*l.warns, msg)
}
func (l *recordingLogger) WithFields(fields map[string]interface{}) logger.Logger { return l }
func (l *recordingLogger) WithError(err error) logger.Logger                    { return l }
func (l *recordingLogger) With(fields map[string]interface{}) logger.Logger     { return l }

func (l *recordingLogger) count(msg string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, w := range *l.warns {
		if w == msg {
			n++
		}
	}
	return n
}

type fakeServer struct {
	*httptest.Server
	openAICalls    atomic.Int32
	anthropicCalls atomic.Int32
	openAIStatus   int
	anthStatus     int
	lastAnthropic  map[string]interface{}
	lastOpenAI     map[string]interface{}
	mu             sync.Mutex
}

func newFakeServer(t *testing.T, openAIStatus, anthStatus int) *fakeServer {
	fs := &fakeServer{openAIStatus: openAIStatus, anthStatus: anthStatus}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		fs.openAICalls.Add(1)
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		fs.mu.Lock()
		fs.lastOpenAI = body
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if fs.openAIStatus != http.StatusOK {
			w.WriteHeader(fs.openAIStatus)
			_, _ = w.Write([]byte(`{"error":{"message":"upstream down","type":"server_error"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o","choices":[{"index":0,"message":{"role":"assistant","content":"from openai"},"finish_reason":"stop"}]}`))
	})
	mux.HandleFunc("/v1/messages", func(w http.ResponseWriter, r *http.Request) {
		fs.anthropicCalls.Add(1)
		assert.Equal(t, "test-anthropic-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		fs.mu.Lock()
		fs.lastAnthropic = body
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if fs.anthStatus != http.StatusOK {
			w.WriteHeader(fs.anthStatus)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"m1","type":"message","role":"assistant","content":[{"type":"text","text":"from anthropic"}]}`))
	})

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func createTestConfig(serverURL, primary string, withOpenAI, withAnthropic bool) config.ProvidersConfig {
	cfg := config.ProvidersConfig{
		Primary:     primary,
		Timeout:     5000,
		Temperature: 0.7,
		OpenAI: config.ProviderConfig{
			BaseURL: serverURL + "/v1",
			Model:   "gpt-4o",
		},
		Anthropic: config.ProviderConfig{
			BaseURL: serverURL,
			Model:   "claude-sonnet-4-20250514",
			Version: "2023-06-01",
		},
	}
	if withOpenAI {
		cfg.OpenAI.APIKey = "test-openai-key"
	}
	if withAnthropic {
		cfg.Anthropic.APIKey = "test-anthropic-key"
	}
	return cfg
}

// ==========================
// Generate
// ==========================

func TestClient_Generate(t *testing.T) {
	tests := []struct {
		name           string
		primary        string
		withOpenAI     bool
		withAnthropic  bool
		openAIStatus   int
		anthStatus     int
		expectedText   string
		expectedCode   apperrors.ErrorCode
		expectedOpenAI int32
		expectedAnth   int32
		expectedFalls  int
	}{
		{
			name:           "openai primary succeeds",
			primary:        "openai",
			withOpenAI:     true,
			withAnthropic:  true,
			openAIStatus:   http.StatusOK,
			anthStatus:     http.StatusOK,
			expectedText:   "from openai",
			expectedOpenAI: 1,
		},
		{
			name:           "anthropic primary succeeds",
			primary:        "anthropic",
			withOpenAI:     true,
			withAnthropic:  true,
			openAIStatus:   http.StatusOK,
			anthStatus:     http.StatusOK,
			expectedText:   "from anthropic",
			expectedAnth:   1,
		},
		{
			name:           "primary fails, secondary succeeds",
			primary:        "openai",
			withOpenAI:     true,
			withAnthropic:  true,
			openAIStatus:   http.StatusInternalServerError,
			anthStatus:     http.StatusOK,
			expectedText:   "from anthropic",
			expectedOpenAI: 1,
			expectedAnth:   1,
			expectedFalls:  1,
		},
		{
			name:           "both fail, secondary error returned once",
			primary:        "anthropic",
			withOpenAI:     true,
			withAnthropic:  true,
			openAIStatus:   http.StatusBadGateway,
			anthStatus:     http.StatusServiceUnavailable,
			expectedCode:   apperrors.ErrCodeProviderCallFailed,
			expectedOpenAI: 1,
			expectedAnth:   1,
			expectedFalls:  1,
		},
		{
			name:           "primary fails without secondary",
			primary:        "openai",
			withOpenAI:     true,
			openAIStatus:   http.StatusInternalServerError,
			expectedCode:   apperrors.ErrCodeProviderCallFailed,
			expectedOpenAI: 1,
		},
		{
			name:          "configured primary missing uses the available one",
			primary:       "openai",
			withAnthropic: true,
			anthStatus:    http.StatusOK,
			expectedText:  "from anthropic",
			expectedAnth:  1,
		},
		{
			name:         "no providers configured",
			primary:      "openai",
			expectedCode: apperrors.ErrCodeProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeServer(t, tt.openAIStatus, tt.anthStatus)
			log := newRecordingLogger()
			client := NewClient(createTestConfig(srv.URL, tt.primary, tt.withOpenAI, tt.withAnthropic), log)

			text, err := client.Generate(context.Background(), models.GenerationRequest{Prompt: "hola", MaxTokens: 50})

			if tt.expectedCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
				assert.Empty(t, text)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedText, text)
			}
			assert.Equal(t, tt.expectedOpenAI, srv.openAICalls.Load())
			assert.Equal(t, tt.expectedAnth, srv.anthropicCalls.Load())
			assert.Equal(t, tt.expectedFalls, log.count("primary provider failed, falling back"))
		})
	}
}

func TestClient_Generate_AppliesDefaults(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, http.StatusOK)
	client := NewClient(createTestConfig(srv.URL, "anthropic", false, true), logger.NewTestLogger(t))

	_, err := client.Generate(context.Background(), models.GenerationRequest{Prompt: "p"})
	require.NoError(t, err)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Equal(t, float64(models.DefaultMaxTokens), srv.lastAnthropic["max_tokens"])
	assert.InDelta(t, 0.7, srv.lastAnthropic["temperature"], 0.0001)
	assert.Equal(t, "claude-sonnet-4-20250514", srv.lastAnthropic["model"])
	messages := srv.lastAnthropic["messages"].([]interface{})
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]interface{})["role"])
}

func TestClient_Generate_ConfiguredTemperature(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, http.StatusOK)
	cfg := createTestConfig(srv.URL, "anthropic", false, true)
	cfg.Temperature = 0.3
	client := NewClient(cfg, logger.NewNoOpLogger())

	_, err := client.Generate(context.Background(), models.GenerationRequest{Prompt: "p"})
	require.NoError(t, err)
	srv.mu.Lock()
	assert.InDelta(t, 0.3, srv.lastAnthropic["temperature"], 0.0001)
	srv.mu.Unlock()

	_, err = client.Generate(context.Background(), models.GenerationRequest{Prompt: "p", Temperature: 0.9})
	require.NoError(t, err)
	srv.mu.Lock()
	assert.InDelta(t, 0.9, srv.lastAnthropic["temperature"], 0.0001)
	srv.mu.Unlock()
}

func TestClient_Generate_NoNetworkWithoutProviders(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, http.StatusOK)
	client := NewClient(createTestConfig(srv.URL, "openai", false, false), logger.NewNoOpLogger())

	_, err := client.Generate(context.Background(), models.GenerationRequest{Prompt: "p"})
	assert.True(t, errors.Is(err, apperrors.ErrProviderUnavailable))
	assert.Zero(t, srv.openAICalls.Load()+srv.anthropicCalls.Load())
}

// ==========================
// Status and Refresh
// ==========================

func TestClient_StatusAndRefresh(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, http.StatusOK)
	client := NewClient(createTestConfig(srv.URL, "", false, false), logger.NewNoOpLogger())

	assert.Equal(t, models.ProviderStatus{
		Anthropic: models.ProviderNotConfigured,
		OpenAI:    models.ProviderNotConfigured,
		Primary:   "openai",
	}, client.Status())
	assert.False(t, client.Available())

	client.Refresh(createTestConfig(srv.URL, "anthropic", true, true))

	assert.Equal(t, models.ProviderStatus{
		Anthropic: models.ProviderAvailable,
		OpenAI:    models.ProviderAvailable,
		Primary:   "anthropic",
	}, client.Status())
	assert.True(t, client.Available())

	text, err := client.Generate(context.Background(), models.GenerationRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "from anthropic", text)
}
