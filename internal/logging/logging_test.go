package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "WARN", false)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Str("file", "a.xsd").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"file":"a.xsd"`)
	assert.Contains(t, out, `"time":`)
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", true)
	require.NoError(t, err)

	logger.Debug().Str("tag", "schema").Msg("read")
	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "tag=schema")
	assert.NotContains(t, out, "{")
}

func TestNewLevels(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, "", false)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	_, err = New(&bytes.Buffer{}, "loud", false)
	assert.Error(t, err)
}
