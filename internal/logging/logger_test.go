package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_WritesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")

	logger.Info().Str("file", "a.xml").Msg("invoice processed")

	assert.Contains(t, buf.String(), "invoice processed")
	assert.Contains(t, buf.String(), "run_id=")
	assert.Contains(t, buf.String(), "file=a.xml")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden too")

	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" ERROR "))
	assert.Equal(t, zerolog.Disabled, ParseLevel("disabled"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("loud"))
}
