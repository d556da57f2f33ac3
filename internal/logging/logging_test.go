package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", "", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("form submission not saved", slog.String("form", "contact"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="form submission not saved"`)
	assert.Contains(t, out, "form=contact")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("DEBUG", "json", &buf)
	require.NoError(t, err)

	logger.Debug("loaded", slog.Int("pages", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, float64(3), entry["pages"])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("chatty", "text", &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `invalid level "chatty"`))

	_, err = New("info", "logfmt", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "logfmt"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"Info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
