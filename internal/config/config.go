// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/monctl/monctl/internal/ddc"
)

// Config represents the application configuration
type Config struct {
	// Feature alias configuration
	Features FeaturesConfig `mapstructure:"features"`

	// Output formatting
	Output OutputConfig `mapstructure:"output"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// FeaturesConfig maps human-readable names onto VCP feature codes.
// Codes are kept as strings ("0x10") so the TOML stays readable.
type FeaturesConfig struct {
	Aliases map[string]string `mapstructure:"aliases"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	JSON bool `mapstructure:"json"` // Default all commands to JSON output
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults; the aliases cover the
	// MCCS controls people actually reach for.
	DefaultConfig = Config{
		Features: FeaturesConfig{
			Aliases: map[string]string{
				"brightness": "0x10",
				"contrast":   "0x12",
				"input":      "0x60",
				"volume":     "0x62",
				"power":      "0xD6",
			},
		},
		Output: OutputConfig{
			JSON: false,
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("monctl")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		// Add config paths in order of precedence
		if appData := os.Getenv("APPDATA"); appData != "" {
			viper.AddConfigPath(filepath.Join(appData, "monctl"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "monctl"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("features.aliases", DefaultConfig.Features.Aliases)
	viper.SetDefault("output.json", DefaultConfig.Output.JSON)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		c := DefaultConfig
		cfg = &c
	}
	return cfg
}

// ResolveFeature turns a feature name or numeric code into a VCP code.
// Aliases from the config take precedence; anything else must parse as
// a hex (0x-prefixed) or decimal value fitting one byte.
func ResolveFeature(s string) (ddc.VCPCode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if code, ok := Get().Features.Aliases[name]; ok {
		s = code
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("unknown feature %q (not an alias, not a number)", name)
	}
	if v > 0xFF {
		return 0, fmt.Errorf("feature code 0x%X out of range (must fit one byte)", v)
	}
	return ddc.VCPCode(v), nil
}
