package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "info", level: "info", want: zerolog.InfoLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "empty_uses_default", level: "", want: DefaultLevel},
		{name: "invalid_uses_default", level: "loud", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", false)

	l.Debug().Str("input", "1:30").Msg("parsed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "1:30", entry["input"])
	assert.Equal(t, "parsed", entry["message"])
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "error", true)

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
