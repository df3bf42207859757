// Package config provides configuration management for the seedxor CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Davincible/seedxor/internal/validation"
	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g.
// SEEDXOR_DEFAULTS_SHARES=3.
const EnvPrefix = "SEEDXOR"

// Config represents the main configuration structure
type Config struct {
	Defaults DefaultSettings `json:"defaults" mapstructure:"defaults"`
	UI       UIConfig        `json:"ui" mapstructure:"ui"`

	// Path is the file the configuration was read from, empty when only
	// defaults and environment variables apply.
	Path string `json:"-" mapstructure:"-"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Language string `json:"language" mapstructure:"language"` // Default: auto
	Shares   int    `json:"shares" mapstructure:"shares"`     // Default: 2
	Words    int    `json:"words" mapstructure:"words"`       // Default: 24
	Short    bool   `json:"short" mapstructure:"short"`       // Default: false
	Validate bool   `json:"validate" mapstructure:"validate"` // Default: true
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor bool   `json:"use_color" mapstructure:"use_color"` // Enable colored output
	LogLevel string `json:"log_level" mapstructure:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultSettings{
			Language: "auto",
			Shares:   2,
			Words:    24,
			Short:    false,
			Validate: true,
		},
		UI: UIConfig{
			UseColor: true,
			LogLevel: "warn",
		},
	}
}

// Load reads the configuration file, if there is one, and applies
// environment overrides on top of the defaults. Nothing is ever written.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit file path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	setDefaults(vip, DefaultConfig())

	cfg := &Config{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			vip.SetConfigFile(path)
			vip.SetConfigType("json")
			if err := vip.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
			cfg.Path = path
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(vip *viper.Viper, d *Config) {
	vip.SetDefault("defaults.language", d.Defaults.Language)
	vip.SetDefault("defaults.shares", d.Defaults.Shares)
	vip.SetDefault("defaults.words", d.Defaults.Words)
	vip.SetDefault("defaults.short", d.Defaults.Short)
	vip.SetDefault("defaults.validate", d.Defaults.Validate)
	vip.SetDefault("ui.use_color", d.UI.UseColor)
	vip.SetDefault("ui.log_level", d.UI.LogLevel)
}

// Validate checks every setting against what the tool supports
func (c *Config) Validate() error {
	if _, err := wordlist.ParseLanguage(c.Defaults.Language); err != nil {
		return fmt.Errorf("defaults.language: %w", err)
	}

	if c.Defaults.Shares < 1 || c.Defaults.Shares > validation.MaxShares {
		return fmt.Errorf("defaults.shares must be between 1 and %d, got %d", validation.MaxShares, c.Defaults.Shares)
	}

	if !mnemonic.ValidateWordCount(c.Defaults.Words) {
		return fmt.Errorf("defaults.words must be 12, 15, 18, 21 or 24, got %d", c.Defaults.Words)
	}

	switch strings.ToLower(c.UI.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("ui.log_level must be debug, info, warn or error, got %q", c.UI.LogLevel)
	}

	return nil
}

// Language returns the parsed default language.
func (c *Config) Language() wordlist.Language {
	lang, _ := wordlist.ParseLanguage(c.Defaults.Language)
	return lang
}

// JSON renders the effective configuration.
func (c *Config) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("SEEDXOR_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "seedxor", "config.json"), nil
	}

	// Default to ~/.config/seedxor/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "seedxor", "config.json"), nil
}
