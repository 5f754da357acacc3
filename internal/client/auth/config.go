package auth

import (
	"os"
)

const (
	// TokenEnvVar is the environment variable holding an explicit token
	TokenEnvVar = "GH_COPILOT_TOKEN"

	// ConfigHomeEnvVar overrides the base config directory
	ConfigHomeEnvVar = "XDG_CONFIG_HOME"

	// HostsFile is written by the VS Code and JetBrains Copilot extensions
	HostsFile = "hosts.json"

	// AppsFile is written by newer Copilot installations
	AppsFile = "apps.json"

	// GitHubHost is the only host entry read from the config files
	GitHubHost = "github.com"

	copilotDirName = "github-copilot"
)

// Environment is the ambient process state the locator reads.
// Tests substitute a map-backed implementation.
type Environment interface {
	LookupEnv(key string) (string, bool)
	HomeDir() (string, error)
}

// OSEnvironment reads the real process environment
type OSEnvironment struct{}

// LookupEnv implements Environment
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// HomeDir implements Environment
func (OSEnvironment) HomeDir() (string, error) {
	return os.UserHomeDir()
}

// getenv returns the value of key, treating an empty value as unset
func getenv(env Environment, key string) (string, bool) {
	v, ok := env.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
