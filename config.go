package dirlog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config defaults
const (
	DefaultLevel     = "debug"
	DefaultPrefix    = "log_"
	DefaultExtension = "txt"
)

// LoggerConfig defines the logger configuration parameters.
// All fields can be configured via JSON, TOML or YAML configuration files.
type LoggerConfig struct {
	Directory string `json:"directory" toml:"directory" yaml:"directory" mapstructure:"directory"` // Directory to store log files, empty selects the registry default
	Level     string `json:"level" toml:"level" yaml:"level" mapstructure:"level"`                 // debug, info, warn, error, fatal, off
	Prefix    string `json:"prefix" toml:"prefix" yaml:"prefix" mapstructure:"prefix"`             // File name prefix before the date
	Extension string `json:"extension" toml:"extension" yaml:"extension" mapstructure:"extension"` // File extension without the dot
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     DefaultLevel,
		Prefix:    DefaultPrefix,
		Extension: DefaultExtension,
	}
}

// mergeConfig fills every empty field of cfg from the defaults.
// A nil cfg yields the defaults.
func mergeConfig(cfg *LoggerConfig) *LoggerConfig {
	defaultConfig := DefaultConfig()
	if cfg == nil {
		return defaultConfig
	}
	return &LoggerConfig{
		Directory: cfg.Directory, // empty is resolved by the registry
		Level:     getConfigValue(defaultConfig.Level, cfg.Level),
		Prefix:    getConfigValue(defaultConfig.Prefix, cfg.Prefix),
		Extension: getConfigValue(defaultConfig.Extension, cfg.Extension),
	}
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type T,
// otherwise returns cfgVal.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// Priority parses the configured level. An empty level is PriorityUnset.
func (c *LoggerConfig) Priority() (Priority, error) {
	if c == nil || strings.TrimSpace(c.Level) == "" {
		return PriorityUnset, nil
	}
	return ParsePriority(c.Level)
}

// Validate checks the configuration for values that cannot be used.
func (c *LoggerConfig) Validate() error {
	if _, err := c.Priority(); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}
	if strings.ContainsRune(c.Prefix, filepath.Separator) {
		return fmt.Errorf("invalid prefix %q: must not contain a path separator", c.Prefix)
	}
	if strings.ContainsRune(c.Extension, filepath.Separator) {
		return fmt.Errorf("invalid extension %q: must not contain a path separator", c.Extension)
	}
	return nil
}

// SetDefaults registers the default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("directory", defaults.Directory)
	v.SetDefault("level", defaults.Level)
	v.SetDefault("prefix", defaults.Prefix)
	v.SetDefault("extension", defaults.Extension)
}

// LoadConfig reads a configuration file. The format follows the file
// extension (toml, yaml, yml, json).
func LoadConfig(file string) (*LoggerConfig, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", file, err)
	}
	return DecodeConfig(v)
}

// DecodeConfig unmarshals the values held by v into a validated LoggerConfig.
func DecodeConfig(v *viper.Viper) (*LoggerConfig, error) {
	var cfg LoggerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	merged := mergeConfig(&cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
