package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	got, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	got, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestInitLogger_JSON(t *testing.T) {
	t.Cleanup(func() { InitLogger(os.Stderr, LevelWarn, FormatText) })

	var buf bytes.Buffer
	InitLogger(&buf, LevelInfo, FormatJSON)
	Conversion("0.1", 10, 2, 20, "0.00011001100110011001", 3*time.Millisecond)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "conversion", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 10, entry["from"])
	assert.EqualValues(t, 2, entry["to"])
	assert.EqualValues(t, 20, entry["precision"])
	assert.EqualValues(t, 3, entry["duration_ms"])
	assert.Same(t, GetLogger(), GetLogger())
}

func TestInitLogger_Level(t *testing.T) {
	t.Cleanup(func() { InitLogger(os.Stderr, LevelWarn, FormatText) })

	var buf bytes.Buffer
	InitLogger(&buf, LevelWarn, FormatText)
	Debug("hidden")
	Info("hidden")
	assert.Empty(t, buf.String())

	ConversionError("1x", 10, 2, errors.New("boom"), "position", 1)
	out := buf.String()
	assert.True(t, strings.Contains(out, "conversion_failed"), out)
	assert.True(t, strings.Contains(out, "error=boom"), out)
	assert.True(t, strings.Contains(out, "position=1"), out)

	Error("shown")
	assert.Contains(t, buf.String(), "shown")
}
