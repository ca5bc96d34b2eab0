package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidOutput is returned when the output format is not supported.
var ErrInvalidOutput = errors.New("invalid output format")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// EnvPrefix prefixes environment variables overriding the configuration.
const EnvPrefix = "PORTCHECK"

type Config struct {
	Root         string   `mapstructure:"root"`
	InstalledDir string   `mapstructure:"installed_dir"`
	PortsDir     string   `mapstructure:"ports_dir"`
	OverlayPorts []string `mapstructure:"overlay_ports"`
	Ignore       []string `mapstructure:"ignore"`
	Triplet      string   `mapstructure:"triplet"`
	Workers      int      `mapstructure:"workers"`
	Output       string   `mapstructure:"output"`
	LogLevel     string   `mapstructure:"log_level"`
}

// Load reads the configuration from configPath, if not empty, then from
// PORTCHECK_* environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("root", ".")
	v.SetDefault("installed_dir", "")
	v.SetDefault("ports_dir", "")
	v.SetDefault("overlay_ports", []string{})
	v.SetDefault("ignore", []string{})
	v.SetDefault("triplet", "")
	v.SetDefault("workers", 1)
	v.SetDefault("output", OutputText)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ApplyDefaults derives the installed and ports directories from Root when unset.
func (c *Config) ApplyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.InstalledDir == "" {
		c.InstalledDir = filepath.Join(c.Root, "installed")
	}
	if c.PortsDir == "" {
		c.PortsDir = filepath.Join(c.Root, "ports")
	}
	if c.Output == "" {
		c.Output = OutputText
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers count: %d", c.Workers)
	}
	return nil
}
