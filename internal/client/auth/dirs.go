package auth

import (
	"path/filepath"
	"slices"
)

// dirStrategy resolves one candidate config directory. A strategy with no
// platforms applies everywhere.
type dirStrategy struct {
	name      string
	platforms []string
	resolve   func(env Environment) (string, bool)
}

// configDirStrategies is ordered; earlier entries are probed first.
var configDirStrategies = []dirStrategy{
	{
		name:    "config-home",
		resolve: configHomeDir,
	},
	{
		name:      "application-support",
		platforms: []string{"darwin"},
		resolve:   applicationSupportDir,
	},
}

func (s dirStrategy) appliesTo(goos string) bool {
	return len(s.platforms) == 0 || slices.Contains(s.platforms, goos)
}

// CandidateDirs returns the directories searched for Copilot config files on
// the given platform, in probe order.
func CandidateDirs(goos string, env Environment) []string {
	var dirs []string
	for _, s := range configDirStrategies {
		if !s.appliesTo(goos) {
			continue
		}
		if dir, ok := s.resolve(env); ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// configHomeDir is $XDG_CONFIG_HOME/github-copilot, falling back to
// ~/.config/github-copilot
func configHomeDir(env Environment) (string, bool) {
	if base, ok := getenv(env, ConfigHomeEnvVar); ok {
		return filepath.Join(base, copilotDirName), true
	}
	home, err := env.HomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, ".config", copilotDirName), true
}

func applicationSupportDir(env Environment) (string, bool) {
	home, err := env.HomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, "Library", "Application Support", copilotDirName), true
}
