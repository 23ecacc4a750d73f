package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.ExportDir)
	assert.Equal(t, float64(palette.DefaultMonoMinLightness), cfg.MonoMinLightness)
	assert.Equal(t, float64(palette.DefaultMonoMaxLightness), cfg.MonoMaxLightness)
	assert.Equal(t, palette.DefaultSampleTarget, cfg.SampleTarget)
	assert.Equal(t, palette.DefaultMaxColors, cfg.MaxColors)
	assert.Equal(t, palette.DefaultAlphaThreshold, cfg.AlphaThreshold)
	assert.Zero(t, cfg.MergeDistance)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PALETTE_MCP_LOG_LEVEL", "debug")
	t.Setenv("PALETTE_MCP_EXPORT_DIR", "/tmp/palettes")
	t.Setenv("PALETTE_MCP_MAX_COLORS", "5")
	t.Setenv("PALETTE_MCP_MERGE_DISTANCE", "0.02")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/palettes", cfg.ExportDir)
	assert.Equal(t, 5, cfg.MaxColors)
	assert.InDelta(t, 0.02, cfg.MergeDistance, 1e-9)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_format: json
mono_min_lightness: 20
mono_max_lightness: 80
sample_target: 500
`), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 20.0, cfg.MonoMinLightness)
	assert.Equal(t, 80.0, cfg.MonoMaxLightness)
	assert.Equal(t, 500, cfg.SampleTarget)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_colors: 3\n"), 0o644))
	t.Setenv("PALETTE_MCP_MAX_COLORS", "6")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.MaxColors)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("PALETTE_MCP_MAX_COLORS", "6")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-colors", 0, "")
	require.NoError(t, flags.Parse([]string{"--max-colors=4"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag(KeyMaxColors, flags.Lookup("max-colors")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxColors)
}

func TestLoad_UnsetFlagKeepsDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-colors", 0, "")
	require.NoError(t, flags.Parse(nil))

	v := viper.New()
	require.NoError(t, v.BindPFlag(KeyMaxColors, flags.Lookup("max-colors")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, palette.DefaultMaxColors, cfg.MaxColors)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"inverted bounds", "PALETTE_MCP_MONO_MIN_LIGHTNESS", "95"},
		{"alpha above 255", "PALETTE_MCP_ALPHA_THRESHOLD", "300"},
		{"zero sample target", "PALETTE_MCP_SAMPLE_TARGET", "0"},
		{"max colors above limit", "PALETTE_MCP_MAX_COLORS", "100000000"},
		{"negative merge distance", "PALETTE_MCP_MERGE_DISTANCE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(viper.New(), "")
			assert.Error(t, err)
		})
	}
}

func TestConfig_EngineSettings(t *testing.T) {
	cfg := &Config{
		MonoMinLightness: 15,
		MonoMaxLightness: 85,
		SampleTarget:     250,
		MaxColors:        4,
		AlphaThreshold:   10,
		MergeDistance:    0.1,
	}
	require.NoError(t, cfg.Validate())

	g := cfg.Generator()
	assert.Equal(t, 15.0, g.MonoMinLightness)
	assert.Equal(t, 85.0, g.MonoMaxLightness)

	e := cfg.Extractor()
	assert.Equal(t, 250, e.SampleTarget)
	assert.Equal(t, 4, e.MaxColors)
	assert.Equal(t, uint8(10), e.AlphaThreshold)
	assert.Equal(t, 0.1, e.MergeDistance)
	assert.Nil(t, e.Region)
}

func TestLoadEnvFiles(t *testing.T) {
	t.Run("missing files", func(t *testing.T) {
		assert.NoError(t, loadEnvFiles(t.TempDir()))
	})

	t.Run("local wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("PALETTE_MCP_TEST_ENV_FILE=local\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PALETTE_MCP_TEST_ENV_FILE=shared\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("PALETTE_MCP_TEST_ENV_FILE") })

		require.NoError(t, loadEnvFiles(dir))
		assert.Equal(t, "local", os.Getenv("PALETTE_MCP_TEST_ENV_FILE"))
	})

	t.Run("malformed", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PALETTE_MCP_LOG_LEVEL=\"debug\n"), 0o644))

		err := loadEnvFiles(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".env")
	})
}
