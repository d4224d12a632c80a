package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/encounter/internal/config"
)

func TestParseLevelValid(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLevelInvalid(t *testing.T) {
	for _, input := range []string{"invalid", "trace", "fatal", ""} {
		t.Run(input, func(t *testing.T) {
			_, err := parseLevel(input)
			assert.Error(t, err)
		})
	}
}

func TestGetLoggerBeforeInit(t *testing.T) {
	assert.NotNil(t, GetLogger())
	assert.True(t, GetLogger().IsInfoEnabled())
}

func TestInitReplacesLogger(t *testing.T) {
	require.NoError(t, Init(config.LogConfig{Level: "debug", Format: "text"}))
	assert.True(t, GetLogger().IsDebugEnabled())

	require.NoError(t, Init(config.LogConfig{Level: "error", Format: "json"}))
	assert.False(t, GetLogger().IsInfoEnabled())

	require.NoError(t, Init(config.LogConfig{Level: "info", Format: "text"}))
}

func TestInitWithInvalidSettings(t *testing.T) {
	err := Init(config.LogConfig{Level: "invalid", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	err = Init(config.LogConfig{Level: "info", Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")

	err = Init(config.LogConfig{
		Level:   "info",
		Format:  "json",
		Outputs: config.LogOutputsConfig{File: config.FileOutputConfig{Enabled: true}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path")
}

func TestFileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var stdout bytes.Buffer
	l, err := newLogrus(config.LogConfig{
		Level:  "debug",
		Format: "json",
		Outputs: config.LogOutputsConfig{
			File: config.FileOutputConfig{
				Enabled: true,
				Path:    logPath,
				Rotation: config.RotationConfig{
					MaxSizeMB:  10,
					MaxBackups: 3,
					MaxAgeDays: 7,
				},
			},
		},
	}, &stdout)
	require.NoError(t, err)

	l.WithField("kind", "ENCOUNTER").Warn("decode failed")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(data))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &line))
	assert.Equal(t, "decode failed", line["msg"])
	assert.Equal(t, "ENCOUNTER", line["kind"])
	assert.Equal(t, "warning", line["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogrus(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestPatternFormatter(t *testing.T) {
	f := &formatter{pattern: "%time [%level] %field %msg%n", time: "15:04:05"}

	entry := logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{"species": 143, "kind": "ENCOUNTER"})
	entry.Time = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	entry.Level = logrus.DebugLevel
	entry.Message = "creature unresolved"

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "03:04:05 [DEBUG] kind=ENCOUNTER,species=143 creature unresolved\n", string(out))
}

func TestPatternFormatterAppendsNewline(t *testing.T) {
	f := &formatter{pattern: "%msg", time: time.RFC3339}

	entry := logrus.NewEntry(logrus.New())
	entry.Message = "hello"

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogrus(config.LogConfig{Level: "info", Format: "text", Pattern: "%field %msg"}, &buf)
	require.NoError(t, err)

	var logger Logger = newEntryLogger(l)
	logger.WithFields(map[string]interface{}{"a": 1}).WithField("b", "two").Info("msg")

	assert.Equal(t, "a=1,b=two msg\n", buf.String())
}

func TestAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogrus(config.LogConfig{Level: "warn", Format: "text", Pattern: "%level %field %msg"}, &buf)
	require.NoError(t, err)

	logger := newEntryLogger(l)
	assert.False(t, logger.IsDebugEnabled())
	assert.False(t, logger.IsInfoEnabled())

	logger.Infof("dropped %d", 1)
	logger.WithError(nil).Warnf("kept %d", 2)
	logger.WithFields(nil).Error("kept")

	assert.Equal(t, "WARNING  kept 2\nERROR  kept\n", buf.String())
}
