package log_test

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/csstokens/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(nil) // Reset after test

	t.Run("Info level logs Info, Warn, Error but not Debug", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelInfo)

		log.Debug("debug message")
		log.Info("info message")
		log.Warn("warn message")
		log.Error("error message")

		output := buf.String()
		assert.NotContains(t, output, "debug message", "Debug should not be logged at Info level")
		assert.Contains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("Error level only logs Error", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelError)

		log.Debug("debug message")
		log.Info("info message")
		log.Warn("warn message")
		log.Error("error message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.NotContains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel(log.LevelDebug)
	defer log.SetOutput(nil)
	defer log.SetLevel(log.LevelInfo)

	t.Run("Messages include prefix and level label", func(t *testing.T) {
		buf.Reset()
		log.Warn("skipping rule %q", ".a{")

		output := buf.String()
		assert.Equal(t, "[CSSTOKENS] WARN: skipping rule \".a{\"\n", output)
	})

	t.Run("Each log message ends with newline", func(t *testing.T) {
		buf.Reset()
		log.Info("message 1")
		log.Debug("message 2")

		lines := strings.Split(buf.String(), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "INFO: message 1")
		assert.Contains(t, lines[1], "DEBUG: message 2")
	})

	t.Run("Percent signs in arguments are not reinterpreted", func(t *testing.T) {
		buf.Reset()
		log.Info("value %s", "50%")
		assert.Contains(t, buf.String(), "value 50%")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
		err  bool
	}{
		{"debug", log.LevelDebug, false},
		{"INFO", log.LevelInfo, false},
		{"", log.LevelInfo, false},
		{"warning", log.LevelWarn, false},
		{"error", log.LevelError, false},
		{"loud", log.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := log.ParseLevel(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetLevel(t *testing.T) {
	originalLevel := log.GetLevel()
	defer log.SetLevel(originalLevel)

	log.SetLevel(log.LevelDebug)
	assert.Equal(t, log.LevelDebug, log.GetLevel())

	log.SetLevel(log.LevelError)
	assert.Equal(t, log.LevelError, log.GetLevel())
	assert.Equal(t, "ERROR", log.GetLevel().String())
}
