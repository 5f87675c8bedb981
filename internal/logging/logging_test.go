package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_FileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cardiosim.log")
	logger, err := build(Config{Level: "debug", File: path}, nil)
	require.NoError(t, err)

	logger.Debug("question answered")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &line))
	assert.Equal(t, "question answered", line["msg"])
	assert.Equal(t, "DEBUG", line["level"])
}

func TestBuild_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(Config{Level: "warn", Console: true}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
}

func TestBuild_NoSinksIsNop(t *testing.T) {
	logger, err := build(Config{}, nil)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(0))
}

func TestBuild_BadLevel(t *testing.T) {
	_, err := build(Config{Level: "loud", Console: true}, &bytes.Buffer{})
	assert.Error(t, err)
}
