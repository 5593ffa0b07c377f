package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/image-interleave/internal/blend"
	"github.com/ironsheep/image-interleave/internal/imaging"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "IMAGE_INTERLEAVE_CONFIG"
	EnvLogLevel   = "IMAGE_INTERLEAVE_LOG_LEVEL"
	EnvChannels   = "IMAGE_INTERLEAVE_CHANNELS"
	EnvBlockSize  = "IMAGE_INTERLEAVE_BLOCK_SIZE"
	EnvResampler  = "IMAGE_INTERLEAVE_RESAMPLER"
)

// Config represents the application configuration.
type Config struct {
	// LogLevel is "info" or "debug".
	LogLevel string `yaml:"logLevel"`

	// Interleave controls pixel extraction and group size.
	Interleave blend.Layout `yaml:"interleave"`

	// Resample selects the resampling backend.
	Resample struct {
		// Filter is one of imaging.ResamplerNames.
		Filter string `yaml:"filter"`
	} `yaml:"resample"`

	// Output tunes the encoder.
	Output imaging.SaveOptions `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{
		LogLevel:   "info",
		Interleave: blend.DefaultLayout,
	}
	cfg.Resample.Filter = imaging.ResamplerImaging
	cfg.Output.JPEGQuality = 95
	return cfg
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	if err := c.Interleave.Validate(); err != nil {
		return err
	}
	if _, err := imaging.NewResampler(c.Resample.Filter); err != nil {
		return err
	}
	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		return errors.Errorf("jpeg quality must be 1-100, got %d", c.Output.JPEGQuality)
	}
	if c.Output.PNGCompression < -3 || c.Output.PNGCompression > 0 {
		return errors.Errorf("png compression must be between -3 and 0, got %d", c.Output.PNGCompression)
	}
	switch strings.ToLower(c.LogLevel) {
	case "info", "debug":
	default:
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// LoadFile loads configuration from a YAML file on top of the defaults.
// If the file doesn't exist, it returns the default configuration.
func LoadFile(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	if err := readFile(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(configPath string, cfg *Config) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "error reading config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "error parsing config file")
	}
	return nil
}

// Load reads the file named by IMAGE_INTERLEAVE_CONFIG (if set), applies
// environment overrides, and validates the result.
//
// Unlike LoadFile, a config path given through the environment must exist.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if path := env(EnvConfigPath, ""); path != "" {
		if err := readFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "%s=%s", EnvConfigPath, path)
		}
	}

	var err error
	cfg.LogLevel = env(EnvLogLevel, cfg.LogLevel)
	if cfg.Interleave.Channels, err = envInt(EnvChannels, cfg.Interleave.Channels); err != nil {
		return nil, err
	}
	if cfg.Interleave.BlockSize, err = envInt(EnvBlockSize, cfg.Interleave.BlockSize); err != nil {
		return nil, err
	}
	cfg.Resample.Filter = env(EnvResampler, cfg.Resample.Filter)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func env(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) (int, error) {
	value := env(key, "")
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "%s must be an integer", key)
	}
	return parsed, nil
}
