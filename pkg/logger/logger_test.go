package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug").Component("alerts")

	log.Info().Str("company_id", "c-1").Msg("calculado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "alerts", entry["component"])
	assert.Equal(t, "c-1", entry["company_id"])
	assert.Equal(t, "calculado", entry["message"])
}

func TestNewWithWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("sí")
	assert.Contains(t, buf.String(), `"sí"`)
}

func TestParseLevel_InvalidoEsInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("verboso").String())
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "debug", parseLevel(" DEBUG ").String())
}
