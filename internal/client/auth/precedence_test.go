package auth

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/alice"

var testConfigDir = filepath.Join(testHome, ".config", "github-copilot")

func newTestLocator(env mapEnv, fs afero.Fs, runner Runner) *Locator {
	env.home = testHome
	return NewLocator(Options{
		Env:        env,
		Fs:         fs,
		Runner:     runner,
		GOOS:       "linux",
		CLITimeout: time.Second,
	})
}

func TestLocator_EnvVarTakesPriority(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(testConfigDir, HostsFile), `{"github.com": {"oauth_token": "from-hosts"}}`)
	runner := &fakeRunner{out: "from-cli\n"}

	for _, value := range []string{"gho_test_token_123", " spaced ", "x"} {
		l := newTestLocator(mapEnv{vars: map[string]string{TokenEnvVar: value}}, fs, runner)

		token, ok := l.Discover(context.Background())
		require.True(t, ok)
		assert.Equal(t, value, token)
	}
	assert.Zero(t, runner.Calls(), "gh must not run when the env var is set")
}

func TestLocator_EmptyEnvVarIsSkipped(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(testConfigDir, HostsFile), `{"github.com": {"oauth_token": "from-hosts"}}`)

	l := newTestLocator(mapEnv{vars: map[string]string{TokenEnvVar: ""}}, fs, &fakeRunner{})

	token, ok := l.Discover(context.Background())
	require.True(t, ok)
	assert.Equal(t, "from-hosts", token)
}

func TestLocator_Precedence(t *testing.T) {
	tests := []struct {
		name         string
		hosts        string
		apps         string
		runner       *fakeRunner
		expectToken  string
		expectSource string
		expectFound  bool
		expectCLIRun bool
	}{
		{
			name:         "hosts.json wins over CLI",
			hosts:        `{"github.com": {"oauth_token": "A"}}`,
			runner:       &fakeRunner{out: "B"},
			expectToken:  "A",
			expectSource: HostsFile,
			expectFound:  true,
		},
		{
			name:         "hosts.json wins over apps.json",
			hosts:        `{"github.com": {"oauth_token": "A"}}`,
			apps:         `{"github.com": {"oauth_token": "C"}}`,
			runner:       &fakeRunner{out: "B"},
			expectToken:  "A",
			expectSource: HostsFile,
			expectFound:  true,
		},
		{
			name:         "apps.json used when hosts.json is malformed",
			hosts:        `{oops`,
			apps:         `{"github.com": {"oauth_token": "C"}}`,
			runner:       &fakeRunner{out: "B"},
			expectToken:  "C",
			expectSource: AppsFile,
			expectFound:  true,
		},
		{
			name:         "CLI used when hosts.json has an entry without oauth_token",
			hosts:        `{"github.com": {"oauth_token": "A"}, "ghe.corp": {"user": "x"}}`,
			runner:       &fakeRunner{out: "B"},
			expectToken:  "B",
			expectSource: "cli",
			expectFound:  true,
			expectCLIRun: true,
		},
		{
			name:         "apps.json used when hosts.json token is empty",
			hosts:        `{"github.com": {"oauth_token": ""}}`,
			apps:         `{"github.com": {"oauth_token": "C"}}`,
			runner:       &fakeRunner{out: "B"},
			expectToken:  "C",
			expectSource: AppsFile,
			expectFound:  true,
		},
		{
			name:         "CLI used when no config files",
			runner:       &fakeRunner{out: "  gho_abc123\n"},
			expectToken:  "gho_abc123",
			expectSource: "cli",
			expectFound:  true,
			expectCLIRun: true,
		},
		{
			name:         "nothing found",
			runner:       &fakeRunner{err: exec.ErrNotFound},
			expectFound:  false,
			expectCLIRun: true,
		},
		{
			name:         "CLI with empty output",
			apps:         `{"github.com": {}}`,
			runner:       &fakeRunner{out: "\n"},
			expectFound:  false,
			expectCLIRun: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.hosts != "" {
				writeFile(t, fs, filepath.Join(testConfigDir, HostsFile), tt.hosts)
			}
			if tt.apps != "" {
				writeFile(t, fs, filepath.Join(testConfigDir, AppsFile), tt.apps)
			}

			l := newTestLocator(mapEnv{}, fs, tt.runner)
			o, ok := l.Lookup(context.Background())

			assert.Equal(t, tt.expectFound, ok)
			assert.Equal(t, tt.expectToken, o.Token)
			if tt.expectFound {
				assert.Equal(t, tt.expectSource, o.Source)
				assert.NotEmpty(t, o.Token)
			}
			assert.Equal(t, tt.expectCLIRun, tt.runner.Calls() > 0)
		})
	}
}

func TestLocator_IsDeterministic(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(testConfigDir, AppsFile), `{"github.com": {"oauth_token": "C"}}`)
	l := newTestLocator(mapEnv{}, fs, &fakeRunner{out: "B"})

	first, _ := l.Discover(context.Background())
	second, _ := l.Discover(context.Background())
	assert.Equal(t, "C", first)
	assert.Equal(t, first, second)
}

func TestLocator_Trace(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, filepath.Join(testConfigDir, HostsFile), `{bad`)
	writeFile(t, fs, filepath.Join(testConfigDir, AppsFile), `{"github.com": {"oauth_token": "C"}}`)
	runner := &fakeRunner{out: "B"}

	l := newTestLocator(mapEnv{}, fs, runner)
	outcomes := l.Trace(context.Background())

	require.Len(t, outcomes, 4)
	assert.Equal(t, []string{"env", HostsFile, AppsFile, "cli"}, l.Sources())

	assert.Equal(t, NotFound, outcomes[0].Kind)
	assert.Equal(t, TokenEnvVar, outcomes[0].Location)
	assert.Equal(t, LocalError, outcomes[1].Kind)
	assert.Equal(t, Found, outcomes[2].Kind)
	assert.Equal(t, Found, outcomes[3].Kind)
	assert.Equal(t, "gh auth token", outcomes[3].Location)
	assert.Equal(t, 1, runner.Calls(), "trace probes every source")

	selected, ok := Select(outcomes)
	require.True(t, ok)
	assert.Equal(t, AppsFile, selected.Source)
	assert.Equal(t, "C", selected.Token)
}

func TestSelect(t *testing.T) {
	_, ok := Select(nil)
	assert.False(t, ok)

	outcomes := []Outcome{
		localError("a", "", errors.New("boom")),
		notFound("b", ""),
		{Source: "c", Kind: Found, Token: ""},
		found("d", "", "D"),
		found("e", "", "E"),
	}
	o, ok := Select(outcomes)
	require.True(t, ok)
	assert.Equal(t, "d", o.Source)
}
