package auth

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/afero"
)

// Source is one place a token can come from
type Source interface {
	Name() string
	Lookup(ctx context.Context) Outcome
}

// envSource reads the token from TokenEnvVar
type envSource struct {
	env Environment
}

func (s envSource) Name() string {
	return "env"
}

func (s envSource) Lookup(_ context.Context) Outcome {
	if token, ok := getenv(s.env, TokenEnvVar); ok {
		return found(s.Name(), TokenEnvVar, token)
	}
	return notFound(s.Name(), TokenEnvVar)
}

// Options wires the ambient inputs of a Locator. Nil fields fall back to the
// real process environment, filesystem and exec.
type Options struct {
	Env        Environment
	Fs         afero.Fs
	Runner     Runner
	GOOS       string
	CLICommand string
	CLITimeout time.Duration // zero waits indefinitely
	Logger     *slog.Logger
}

// DefaultOptions returns options for the host with a bounded CLI wait
func DefaultOptions() Options {
	return Options{CLITimeout: DefaultCLITimeout}
}

func (o Options) withDefaults() Options {
	if o.Env == nil {
		o.Env = OSEnvironment{}
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Runner == nil {
		o.Runner = ExecRunner{}
	}
	if o.GOOS == "" {
		o.GOOS = runtime.GOOS
	}
	if o.CLICommand == "" {
		o.CLICommand = DefaultCLICommand
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Locator resolves the token using precedence:
// 1. Environment variable (GH_COPILOT_TOKEN)
// 2. hosts.json
// 3. apps.json
// 4. gh auth token
type Locator struct {
	sources []Source
	logger  *slog.Logger
}

// NewLocator creates a locator over the default source chain
func NewLocator(opts Options) *Locator {
	opts = opts.withDefaults()
	files := NewConfigFileReader(opts.Fs, opts.Env, opts.GOOS)
	return &Locator{
		sources: []Source{
			envSource{env: opts.Env},
			configSource{reader: files, filename: HostsFile},
			configSource{reader: files, filename: AppsFile},
			NewCLIReader(opts.Runner, opts.CLICommand, opts.CLITimeout),
		},
		logger: opts.Logger,
	}
}

// Sources returns the names of the sources in precedence order
func (l *Locator) Sources() []string {
	names := make([]string, len(l.sources))
	for i, s := range l.sources {
		names[i] = s.Name()
	}
	return names
}

// Lookup returns the outcome of the first source that yields a token.
// Later sources are not consulted once one succeeds.
func (l *Locator) Lookup(ctx context.Context) (Outcome, bool) {
	for _, s := range l.sources {
		o := l.probe(ctx, s)
		if o.OK() {
			return o, true
		}
	}
	return Outcome{}, false
}

// Discover returns the first available token, or false when no source has one.
// Absence is not an error.
func (l *Locator) Discover(ctx context.Context) (string, bool) {
	o, ok := l.Lookup(ctx)
	return o.Token, ok
}

// Trace probes every source, without short-circuiting, and returns all
// outcomes in precedence order
func (l *Locator) Trace(ctx context.Context) []Outcome {
	outcomes := make([]Outcome, 0, len(l.sources))
	for _, s := range l.sources {
		outcomes = append(outcomes, l.probe(ctx, s))
	}
	return outcomes
}

// Select folds outcomes in order: the first Found wins and every other kind
// means "try the next one"
func Select(outcomes []Outcome) (Outcome, bool) {
	for _, o := range outcomes {
		if o.OK() {
			return o, true
		}
	}
	return Outcome{}, false
}

func (l *Locator) probe(ctx context.Context, s Source) Outcome {
	o := s.Lookup(ctx)
	if o.Source == "" {
		o.Source = s.Name()
	}

	attrs := []any{"source", o.Source, "outcome", o.Kind.String(), "location", o.Location}
	if o.Err != nil {
		attrs = append(attrs, "error", o.Err)
	}
	if o.OK() {
		attrs = append(attrs, "token", Mask(o.Token))
	}
	l.logger.Debug("Token source probed", attrs...)
	return o
}

// DiscoverToken looks up a token with the host's environment, filesystem and
// gh CLI
func DiscoverToken() (string, bool) {
	return NewLocator(DefaultOptions()).Discover(context.Background())
}

// ReadConfigToken reads the github.com token from a Copilot config file in
// the host's candidate directories
func ReadConfigToken(filename string) (string, bool) {
	opts := DefaultOptions().withDefaults()
	return NewConfigFileReader(opts.Fs, opts.Env, opts.GOOS).ReadToken(filename)
}

// ReadCLIToken reads the token printed by `gh auth token`
func ReadCLIToken() (string, bool) {
	opts := DefaultOptions().withDefaults()
	return NewCLIReader(opts.Runner, opts.CLICommand, opts.CLITimeout).ReadToken(context.Background())
}
