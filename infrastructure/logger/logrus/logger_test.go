package logrus

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedreader-api/pkg/config"
)

func TestLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, config.LogConfig{Level: "info", Format: "json"})

	logger.Info("Feed added", map[string]interface{}{
		"url":   "https://example.com/feed",
		"items": 42,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Feed added", entry["msg"])
	assert.Equal(t, "https://example.com/feed", entry["url"])
	assert.Equal(t, float64(42), entry["items"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Debug("debug", nil)
	logger.Info("info", nil)
	assert.Empty(t, buf.String())

	logger.Warn("warn", nil)
	logger.Error("error", map[string]interface{}{"code": 500})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, config.LogConfig{Level: "loud"})

	logger.Debug("hidden", nil)
	logger.Info("shown", nil)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, config.LogConfig{Level: "debug", Format: "text"})

	logger.Debug("text line", map[string]interface{}{"key": "value"})
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), `msg="text line"`)
	assert.Contains(t, buf.String(), "key=value")
}

func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})

	logger.Info("to file", nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
