package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// HostEntry is a per-host record in hosts.json or apps.json
type HostEntry struct {
	OAuthToken string `json:"oauth_token"`
	User       string `json:"user,omitempty"`
}

// UnmarshalJSON requires oauth_token on every entry, whatever the host
func (e *HostEntry) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return errors.New("host entry is null")
	}
	var raw struct {
		OAuthToken *string `json:"oauth_token"`
		User       string  `json:"user"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.OAuthToken == nil {
		return errors.New("host entry has no oauth_token")
	}
	e.OAuthToken = *raw.OAuthToken
	e.User = raw.User
	return nil
}

// ConfigFile maps hostnames to their entries
type ConfigFile map[string]HostEntry

// ParseConfigFile parses the contents of hosts.json or apps.json. An entry
// without oauth_token fails the whole file, even for a host other than
// github.com.
func ParseConfigFile(data []byte) (ConfigFile, error) {
	var cfg ConfigFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Token returns the OAuth token stored for host, if any
func (c ConfigFile) Token(host string) (string, bool) {
	entry, ok := c[host]
	if !ok || entry.OAuthToken == "" {
		return "", false
	}
	return entry.OAuthToken, true
}

// ConfigFileReader reads tokens from Copilot config files in the candidate
// directories of one platform
type ConfigFileReader struct {
	fs   afero.Fs
	env  Environment
	goos string
}

// NewConfigFileReader creates a reader over fs for the given platform
func NewConfigFileReader(fs afero.Fs, env Environment, goos string) *ConfigFileReader {
	return &ConfigFileReader{
		fs:   fs,
		env:  env,
		goos: goos,
	}
}

// Lookup probes every candidate directory for filename and returns the first
// usable token. When nothing is found, the last local error (if any) is
// reported so diagnostics can show why a present file was skipped.
func (r *ConfigFileReader) Lookup(filename string) Outcome {
	dirs := CandidateDirs(r.goos, r.env)
	if len(dirs) == 0 {
		return notFound(filename, "")
	}

	var last Outcome
	for _, dir := range dirs {
		path := filepath.Join(dir, filename)
		o := r.lookupPath(filename, path)
		if o.OK() {
			return o
		}
		if last.Kind != LocalError {
			last = o
		}
	}
	return last
}

// ReadToken returns the token from filename, or false when absent
func (r *ConfigFileReader) ReadToken(filename string) (string, bool) {
	o := r.Lookup(filename)
	return o.Token, o.OK()
}

func (r *ConfigFileReader) lookupPath(source, path string) Outcome {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return notFound(source, path)
		}
		return localError(source, path, fmt.Errorf("failed to read config file: %w", err))
	}

	cfg, err := ParseConfigFile(data)
	if err != nil {
		return localError(source, path, err)
	}

	token, ok := cfg.Token(GitHubHost)
	if !ok {
		return notFound(source, path)
	}
	return found(source, path, token)
}

// configSource adapts a ConfigFileReader to the Source interface
type configSource struct {
	reader   *ConfigFileReader
	filename string
}

func (s configSource) Name() string {
	return s.filename
}

func (s configSource) Lookup(_ context.Context) Outcome {
	return s.reader.Lookup(s.filename)
}
