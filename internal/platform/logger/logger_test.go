package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("logfmt"))
}

func TestZapLogger_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "foster-intake", Output: &buf})

	log.Debug("hidden", nil)
	log.With(map[string]any{"intake_id": "it-1"}).Warn("out of range", map[string]any{
		"medication": "drontal",
		"err":        errors.New("boom"),
		" ":          "ignored",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "out of range", entry["msg"])
	assert.Equal(t, "foster-intake", entry["app"])
	assert.Equal(t, "it-1", entry["intake_id"])
	assert.Equal(t, "drontal", entry["medication"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, " ")
	assert.Contains(t, entry, "ts")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing", map[string]any{"a": 1})
	assert.NotNil(t, log.With(map[string]any{"b": 2}))
}
