// Package config loads runtime settings from .env files, environment
// variables, an optional YAML file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// EnvPrefix prefixes every environment variable, e.g. PALETTE_MCP_LOG_LEVEL.
const EnvPrefix = "PALETTE_MCP"

// Keys understood by Load. Environment variables are the upper-cased key
// with EnvPrefix, flags use '-' in place of '_'.
const (
	KeyLogLevel         = "log_level"
	KeyLogFormat        = "log_format"
	KeyExportDir        = "export_dir"
	KeyMonoMinLightness = "mono_min_lightness"
	KeyMonoMaxLightness = "mono_max_lightness"
	KeySampleTarget     = "sample_target"
	KeyMaxColors        = "max_colors"
	KeyAlphaThreshold   = "alpha_threshold"
	KeyMergeDistance    = "merge_distance"
)

// Config holds the application configuration.
type Config struct {
	// Logging configuration
	LogLevel  string
	LogFormat string

	// ExportDir is where palette_export writes files. Empty disables writing.
	ExportDir string

	// Palette engine tuning
	MonoMinLightness float64
	MonoMaxLightness float64
	SampleTarget     int
	MaxColors        int
	AlphaThreshold   int
	MergeDistance    float64

	// ConfigFile is the YAML file that was read, if any.
	ConfigFile string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyExportDir, "")
	v.SetDefault(KeyMonoMinLightness, palette.DefaultMonoMinLightness)
	v.SetDefault(KeyMonoMaxLightness, palette.DefaultMonoMaxLightness)
	v.SetDefault(KeySampleTarget, palette.DefaultSampleTarget)
	v.SetDefault(KeyMaxColors, palette.DefaultMaxColors)
	v.SetDefault(KeyAlphaThreshold, palette.DefaultAlphaThreshold)
	v.SetDefault(KeyMergeDistance, 0.0)
}

// Load reads configuration in order of precedence:
//  1. Flags bound to v by the caller
//  2. Environment variables (PALETTE_MCP_*)
//  3. .env.local and .env in the working directory
//  4. configFile, or .palette-mcp.yaml in the working or home directory
//  5. Defaults
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := loadEnvFiles("."); err != nil {
		return nil, err
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".palette-mcp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        v.GetString(KeyLogFormat),
		ExportDir:        v.GetString(KeyExportDir),
		MonoMinLightness: v.GetFloat64(KeyMonoMinLightness),
		MonoMaxLightness: v.GetFloat64(KeyMonoMaxLightness),
		SampleTarget:     v.GetInt(KeySampleTarget),
		MaxColors:        v.GetInt(KeyMaxColors),
		AlphaThreshold:   v.GetInt(KeyAlphaThreshold),
		MergeDistance:    v.GetFloat64(KeyMergeDistance),
		ConfigFile:       v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the engine settings are usable.
func (c *Config) Validate() error {
	if err := c.Generator().Validate(); err != nil {
		return err
	}
	if c.AlphaThreshold < 0 || c.AlphaThreshold > 255 {
		return fmt.Errorf("alpha threshold must be within 0-255, got %d", c.AlphaThreshold)
	}
	return c.Extractor().Validate()
}

// Generator returns a palette generator using the configured bounds.
func (c *Config) Generator() *palette.Generator {
	return &palette.Generator{
		MonoMinLightness: c.MonoMinLightness,
		MonoMaxLightness: c.MonoMaxLightness,
	}
}

// Extractor returns an image sampler using the configured settings.
func (c *Config) Extractor() *palette.Extractor {
	return &palette.Extractor{
		SampleTarget:   c.SampleTarget,
		MaxColors:      c.MaxColors,
		AlphaThreshold: uint8(c.AlphaThreshold),
		MergeDistance:  c.MergeDistance,
	}
}

// loadEnvFiles loads .env.local then .env from dir. godotenv never
// overrides variables that are already set, so the first file wins.
// Missing files are skipped.
func loadEnvFiles(dir string) error {
	for _, name := range []string{".env.local", ".env"} {
		envFile := filepath.Join(dir, name)
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return nil
}
