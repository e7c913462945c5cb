package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/gradereport/pkg/config"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output: %s", buf.String())
	return entry
}

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{"debug level", "debug", zerolog.DebugLevel},
		{"info level", "info", zerolog.InfoLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"error level", "error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&config.Config{Env: "development", LogLevel: tt.level, LogFormat: "json"}, &buf)
			require.NotNil(t, log)
			assert.Equal(t, tt.wantLevel, log.zlog.GetLevel())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"invalid", zerolog.InfoLevel}, // Default
		{"", zerolog.InfoLevel},        // Default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{Env: "test", LogLevel: "debug", LogFormat: "json"}, &buf)

	tests := []struct {
		name      string
		logFunc   func()
		wantMsg   string
		wantLevel string
	}{
		{"debug", func() { log.Debug("debug message") }, "debug message", "debug"},
		{"info", func() { log.Info("info message") }, "info message", "info"},
		{"warn", func() { log.Warn("warn message") }, "warn message", "warn"},
		{"error", func() { log.Error("error message") }, "error message", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc()

			entry := decode(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantMsg, entry["message"])
			assert.Equal(t, "test", entry["env"])
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{Env: "test", LogLevel: "warn", LogFormat: "json"}, &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{Env: "test", LogLevel: "debug", LogFormat: "json"}, &buf)

	log.WithComponent("ingest").
		WithFields(map[string]interface{}{
			"path": "grades.csv",
			"rows": 4,
		}).
		WithError(errors.New("missing columns")).
		Warn("file skipped")

	entry := decode(t, &buf)
	assert.Equal(t, "ingest", entry["component"])
	assert.Equal(t, "grades.csv", entry["path"])
	assert.Equal(t, float64(4), entry["rows"])
	assert.Equal(t, "missing columns", entry["error"])
	assert.Equal(t, "file skipped", entry["message"])
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{Env: "test", LogLevel: "debug", LogFormat: "json"}, &buf)

	log.WithField("student", "Иванов").Info("grade parsed")

	entry := decode(t, &buf)
	assert.Equal(t, "Иванов", entry["student"])
}

func TestLogFormats(t *testing.T) {
	for _, format := range []string{"json", "console", "pretty"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&config.Config{Env: "test", LogLevel: "info", LogFormat: format}, &buf)
			log.Info("test message")

			assert.True(t, strings.Contains(buf.String(), "test message"), "got: %s", buf.String())
		})
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().WithField("k", "v").Error("dropped")
	})
}
