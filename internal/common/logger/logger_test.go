// internal/common/logger/logger_test.go
package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestScopedLoggers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	ForStage(log, "market-intel").Info("research done", map[string]interface{}{"queries": 3})
	ForRun(log, "run-1", "trend-jacker").Warn("stage degraded", map[string]interface{}{
		"error": errors.New("boom"),
	})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	stage := entries[0].ContextMap()
	assert.Equal(t, "market-intel", stage["stage"])
	assert.Equal(t, int64(3), stage["queries"])

	run := entries[1].ContextMap()
	assert.Equal(t, "run-1", run["runId"])
	assert.Equal(t, "trend-jacker", run["route"])
	assert.Equal(t, "boom", run["error"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}
