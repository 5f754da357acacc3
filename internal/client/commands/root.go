package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/criteo/copilot-auth/internal/client"
	"github.com/criteo/copilot-auth/internal/client/auth"
	"github.com/criteo/copilot-auth/internal/config"
	"github.com/criteo/copilot-auth/internal/logging"
)

var version = "0.1.0"

var (
	// Global flags
	flagConfig  string
	flagJSON    bool
	flagVerbose bool
	flagTimeout time.Duration

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "copilot-authctl",
	Short: "GitHub Copilot token discovery and validation",
	Long: `copilot-authctl finds the GitHub OAuth token used to access GitHub Copilot
and checks whether it has an active Copilot subscription.

Sources are tried in order, first match wins:
  1. GH_COPILOT_TOKEN environment variable
  2. github-copilot/hosts.json (VS Code, JetBrains)
  3. github-copilot/apps.json (newer Copilot installations)
  4. gh auth token`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// ExecuteContext executes the root command with ctx
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to configuration file (or use "+config.ConfigFileEnvVar+" env var)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "HTTP request timeout (overrides validate.timeout)")

	rootCmd.SetVersionTemplate(`{{.Version}}
`)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	// Check for config file from environment variable if not provided via flag
	if flagConfig == "" {
		flagConfig = os.Getenv(config.ConfigFileEnvVar)
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if flagTimeout > 0 {
		loaded.Endpoint.Timeout = flagTimeout
	}
	if flagVerbose {
		loaded.Logging.Level = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = loaded
	logger = logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	logger.Debug("Configuration loaded",
		"config_file", flagConfig,
		"cli_command", cfg.CLI.Command,
		"cli_timeout", cfg.CLI.Timeout,
		"validate_url", cfg.Endpoint.URL)
	return nil
}

// newLocator creates a locator over the host environment
func newLocator() *auth.Locator {
	opts := cfg.LocatorOptions()
	opts.Logger = logger
	return auth.NewLocator(opts)
}

// newAPIClient creates a client for the Copilot token endpoint
func newAPIClient() *client.Client {
	return client.NewClient(cfg.Endpoint.URL, cfg.Endpoint.UserAgent, cfg.Endpoint.Timeout, logger)
}
