package auth

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultCLICommand is the GitHub CLI binary
	DefaultCLICommand = "gh"

	// DefaultCLITimeout bounds the wait for the GitHub CLI
	DefaultCLITimeout = 10 * time.Second

	// execWaitDelay bounds the wait for output pipes after the command is
	// killed, since a background child can hold stdout open
	execWaitDelay = time.Second
)

// DefaultCLIArgs prints the token of the active gh account
var DefaultCLIArgs = []string{"auth", "token"}

// Runner runs an external command and returns its standard output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec. Standard error is discarded.
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = io.Discard
	cmd.WaitDelay = execWaitDelay
	return cmd.Output()
}

// CLIReader reads a token printed by an external command
type CLIReader struct {
	runner  Runner
	command string
	args    []string
	timeout time.Duration
}

// NewCLIReader creates a reader for command. A zero timeout waits for the
// command indefinitely.
func NewCLIReader(runner Runner, command string, timeout time.Duration) *CLIReader {
	return &CLIReader{
		runner:  runner,
		command: command,
		args:    DefaultCLIArgs,
		timeout: timeout,
	}
}

// CommandLine returns the command as it would be typed in a shell
func (r *CLIReader) CommandLine() string {
	return strings.Join(append([]string{r.command}, r.args...), " ")
}

// Lookup runs the command and returns its trimmed output as a token
func (r *CLIReader) Lookup(ctx context.Context) Outcome {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	location := r.CommandLine()
	out, err := r.runner.Run(ctx, r.command, r.args...)
	if err != nil {
		if ctx.Err() != nil {
			return localError("cli", location, fmt.Errorf("command timed out: %w", ctx.Err()))
		}
		return localError("cli", location, fmt.Errorf("command failed: %w", err))
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return notFound("cli", location)
	}
	return found("cli", location, token)
}

// ReadToken returns the command's token, or false when absent
func (r *CLIReader) ReadToken(ctx context.Context) (string, bool) {
	o := r.Lookup(ctx)
	return o.Token, o.OK()
}

func (r *CLIReader) Name() string {
	return "cli"
}
