package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"warning": LogLevelWarn,
		" error ": LogLevelError,
		"off":     LogLevelOff,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestLogLevelUnmarshalText(t *testing.T) {
	var level LogLevel
	require.NoError(t, level.UnmarshalText([]byte("debug")))
	assert.Equal(t, LogLevelDebug, level)
	assert.Equal(t, "debug", level.String())

	assert.Error(t, level.UnmarshalText([]byte("verbose")))
	assert.Equal(t, LogLevelDebug, level)
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, LogLevelWarn)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown", "status", 429, "path", "videos/")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, float64(429), entry["status"])
	assert.Equal(t, "videos/", entry["path"])
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, LogLevelOff)

	log.Error("hidden")
	assert.Empty(t, buf.String())

	log.SetLevel(LogLevelDebug)
	log.Debug("shown", "odd")
	assert.Contains(t, buf.String(), `"odd":"(missing)"`)
}

func TestNopLogger(t *testing.T) {
	log := NopLogger()
	assert.NotPanics(t, func() {
		log.Error("discarded", "k", "v")
		log.SetLevel(LogLevelDebug)
		log.Debug("discarded")
	})
}
