package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelAndFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	var buf bytes.Buffer

	log := New("debug", "json", &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("horse", 3).Debug("jump")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "jump", entry["msg"])
	assert.Equal(t, float64(3), entry["horse"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	var buf bytes.Buffer

	log := New("chatty", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	assert.Empty(t, buf.String())
	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	var buf bytes.Buffer

	log := New("debug", "text", &buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	_, isJSON := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}
