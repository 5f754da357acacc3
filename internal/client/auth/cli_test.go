package auth

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingRunner waits until its context is done
type blockingRunner struct{}

func (blockingRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// argsRunner records the command line it was given
type argsRunner struct {
	name string
	args []string
}

func (r *argsRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.name = name
	r.args = args
	return []byte("tok"), nil
}

func TestCLIReader_Lookup(t *testing.T) {
	tests := []struct {
		name       string
		runner     *fakeRunner
		expectKind OutcomeKind
		expectTok  string
	}{
		{
			name:       "trims whitespace",
			runner:     &fakeRunner{out: "  gho_abc123\n"},
			expectKind: Found,
			expectTok:  "gho_abc123",
		},
		{
			name:       "empty output",
			runner:     &fakeRunner{out: "  \n"},
			expectKind: NotFound,
		},
		{
			name:       "not installed",
			runner:     &fakeRunner{err: &exec.Error{Name: "gh", Err: exec.ErrNotFound}},
			expectKind: LocalError,
		},
		{
			name:       "non-zero exit",
			runner:     &fakeRunner{err: errors.New("exit status 1")},
			expectKind: LocalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCLIReader(tt.runner, DefaultCLICommand, time.Second)
			o := r.Lookup(context.Background())

			assert.Equal(t, tt.expectKind, o.Kind)
			assert.Equal(t, tt.expectTok, o.Token)
			assert.Equal(t, "cli", o.Source)

			token, ok := r.ReadToken(context.Background())
			assert.Equal(t, tt.expectKind == Found, ok)
			assert.Equal(t, tt.expectTok, token)
		})
	}
}

func TestCLIReader_Timeout(t *testing.T) {
	r := NewCLIReader(blockingRunner{}, DefaultCLICommand, 20*time.Millisecond)

	start := time.Now()
	o := r.Lookup(context.Background())

	assert.Equal(t, LocalError, o.Kind)
	require.Error(t, o.Err)
	assert.Contains(t, o.Err.Error(), "timed out")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCLIReader_CommandLine(t *testing.T) {
	runner := &argsRunner{}
	r := NewCLIReader(runner, "/usr/local/bin/gh", 0)

	_, ok := r.ReadToken(context.Background())
	require.True(t, ok)
	assert.Equal(t, "/usr/local/bin/gh", runner.name)
	assert.Equal(t, []string{"auth", "token"}, runner.args)
	assert.Equal(t, "/usr/local/bin/gh auth token", r.CommandLine())
}

func TestExecRunner_TimeoutWithBackgroundChild(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	r := NewCLIReader(ExecRunner{}, "sh", 300*time.Millisecond)
	// the background sleep inherits stdout and outlives the killed shell
	r.args = []string{"-c", "sleep 5 & sleep 5"}

	start := time.Now()
	o := r.Lookup(context.Background())

	assert.Equal(t, LocalError, o.Kind)
	require.Error(t, o.Err)
	assert.Contains(t, o.Err.Error(), "timed out")
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewCLIReader(ExecRunner{}, "definitely-not-a-real-gh-binary", time.Second)
	_, ok := r.ReadToken(context.Background())
	assert.False(t, ok)
}
