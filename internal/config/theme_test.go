package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themeFile, []byte(`theme:
  accent: "#FF0000"
  positive: "#00FF00"
  negative: "#0000FF"
`), 0o644))
	t.Setenv(ThemeFileEnv, themeFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Positive)
	assert.Equal(t, "#0000FF", cfg.ColorScheme.Negative)

	// Other colors keep their defaults
	assert.Equal(t, colors.Default().Sum, cfg.ColorScheme.Sum)
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, *colors.Default(), cfg.ColorScheme)
}

func TestPresets(t *testing.T) {
	for _, name := range colors.Presets {
		t.Run(name, func(t *testing.T) {
			scheme := colors.ColorScheme{Preset: name}
			scheme.ApplyDefaults()

			assert.Equal(t, name, scheme.Preset)
			assert.Equal(t, *colors.GetPreset(name), scheme)
			assert.NotEmpty(t, scheme.ErrorBg)
			assert.NotEmpty(t, scheme.StatusBarText)
		})
	}

	assert.Equal(t, "default", colors.GetPreset("no-such-theme").Preset)
}

func TestMergeFromPresetSwitch(t *testing.T) {
	scheme := *colors.Default()
	scheme.MergeFrom(colors.ColorScheme{Preset: "lotus", Sum: "#ABCDEF"})

	assert.Equal(t, "lotus", scheme.Preset)
	assert.Equal(t, colors.Lotus().Normal, scheme.Normal)
	assert.Equal(t, "#ABCDEF", scheme.Sum)
}
