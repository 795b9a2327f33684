package logger_test

import (
	"testing"

	"codeberg.org/veland/wearsyncd/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"debug":   logger.DebugLevel,
		"info":    logger.InfoLevel,
		"warning": logger.WarnLevel,
		"error":   logger.ErrorLevel,
	}

	for name, want := range cases {
		level, ok := logger.ParseLevel(name)
		require.True(t, ok, "level %q should parse", name)
		assert.Equal(t, want, level)
	}

	_, ok := logger.ParseLevel("invalid")
	assert.False(t, ok)
}

func TestConfiguredLevelIsApplied(t *testing.T) {
	logger.Init(false, false, true)
	defer logger.SetLogLevel(logger.WarnLevel)

	level, ok := logger.ParseLevel("error")
	require.True(t, ok)
	logger.SetLogLevel(level)

	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel(),
		"a configured log_level must change the global level")
}
