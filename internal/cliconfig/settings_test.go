package cliconfig

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("LANGSTAT_OUTPUT_FORMAT", "json")
	t.Setenv("LANGSTAT_EXCLUDE", "vendor/**, *.min.js")

	s := LoadFromEnvironment()
	assert.Equal(t, "json", s.OutputFormat)
	assert.Equal(t, []string{"vendor/**", "*.min.js"}, s.ExcludePatterns)
}

func TestParseLogLevelRecognizesAllTiers(t *testing.T) {
	tiers := map[string]slog.Level{
		"trace": slog.LevelDebug - 4,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"fatal": slog.LevelError + 4,
	}
	for name, want := range tiers {
		level, err := ParseLogLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, level, name)
	}

	_, err := ParseLogLevel("nonsense")
	assert.Error(t, err)
}
