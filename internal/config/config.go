package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/criteo/copilot-auth/internal/client"
	"github.com/criteo/copilot-auth/internal/client/auth"
	urlconfig "github.com/criteo/copilot-auth/internal/client/config"
)

// ConfigFileEnvVar points at an optional YAML config file
const ConfigFileEnvVar = "COPILOT_AUTH_CONFIG_FILE"

// Config holds all configuration for copilot-authctl
type Config struct {
	CLI      CLIConfig      `mapstructure:"cli"`
	Endpoint EndpointConfig `mapstructure:"validate"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// CLIConfig configures the gh CLI token source
type CLIConfig struct {
	Command string        `mapstructure:"command"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 waits indefinitely
}

// EndpointConfig configures the token endpoint
type EndpointConfig struct {
	URL       string        `mapstructure:"url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // json | text
}

// NewViper creates a new viper instance with defaults and environment binding
func NewViper() *viper.Viper {
	v := viper.New()

	// Set defaults
	v.SetDefault("cli.command", auth.DefaultCLICommand)
	v.SetDefault("cli.timeout", auth.DefaultCLITimeout)
	v.SetDefault("validate.url", client.DefaultTokenURL)
	v.SetDefault("validate.user_agent", client.DefaultUserAgent)
	v.SetDefault("validate.timeout", client.DefaultTimeout)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	// Bind environment variables with COPILOT_AUTH_ prefix
	v.SetEnvPrefix("COPILOT_AUTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads configuration from defaults, environment variables and an
// optional YAML file. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := NewViper()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a pre-configured viper instance
// This allows CLI flags to be bound before loading
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Endpoint.URL = urlconfig.NormalizeURL(cfg.Endpoint.URL)
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CLI.Command) == "" {
		return fmt.Errorf("cli.command cannot be empty")
	}
	if c.CLI.Timeout < 0 {
		return fmt.Errorf("cli.timeout cannot be negative")
	}

	if err := urlconfig.ValidateEndpoint(c.Endpoint.URL); err != nil {
		return fmt.Errorf("invalid validate.url: %w", err)
	}
	if c.Endpoint.Timeout < 0 {
		return fmt.Errorf("validate.timeout cannot be negative")
	}
	if strings.TrimSpace(c.Endpoint.UserAgent) == "" {
		return fmt.Errorf("validate.user_agent cannot be empty")
	}

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be debug, info, warn, or error")
	}

	// Validate logging format
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("logging.format must be json or text")
	}

	return nil
}

// LocatorOptions returns locator options for the host environment
func (c *Config) LocatorOptions() auth.Options {
	opts := auth.DefaultOptions()
	opts.CLICommand = c.CLI.Command
	opts.CLITimeout = c.CLI.Timeout
	return opts
}
