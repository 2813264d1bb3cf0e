package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	cases := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}
	for _, c := range cases {
		SetupLogger(c.verbosity)
		assert.Equal(t, c.level, zerolog.GlobalLevel(), "verbosity %d", c.verbosity)
	}
}

func TestGetLoggerComponentField(t *testing.T) {
	SetupLogger(0)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("ruleset.loader")
	logger.Warn().Msg("boom")

	assert.Contains(t, buf.String(), `"component":"ruleset.loader"`)
	assert.Contains(t, buf.String(), "boom")
}
