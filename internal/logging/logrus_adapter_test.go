package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "invalid",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestLogrusAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	underlying := logrus.New()
	underlying.SetOutput(&buf)
	underlying.SetLevel(logrus.DebugLevel)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithField("component", "test").Info("hello")

	output := buf.String()
	assert.Contains(t, output, `"component":"test"`)
	assert.Contains(t, output, `"msg":"hello"`)
}

func TestLogrusAdapterWithError(t *testing.T) {
	var buf bytes.Buffer
	underlying := logrus.New()
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithError(errors.New("boom")).Warn("operation failed")

	output := buf.String()
	assert.Contains(t, output, `"error":"boom"`)
	assert.Contains(t, output, `"msg":"operation failed"`)
}

func TestGetLoggerSingleton(t *testing.T) {
	first := GetLogger()
	second := GetLogger()
	assert.Same(t, first, second)
}

func TestMockLogger(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("started", Field{Key: "n", Value: 1})
	mock.Warn("something odd")

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "started"))
	assert.True(t, mock.HasEntry("WARN", "something odd"))
	assert.False(t, mock.HasEntry("ERROR", "started"))
}
