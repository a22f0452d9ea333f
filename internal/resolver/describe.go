package resolver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Runner executes a command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner. A non-zero exit status is returned as an error.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	return cmd.Output()
}

// DescribeProvider asks the VCS for a label derived from the latest tag.
type DescribeProvider struct {
	// argv is the command and its arguments.
	argv []string
	// dir is the working directory of the command, "" for the current one.
	dir string
	// timeout bounds the subprocess.
	timeout time.Duration
	// runner executes the command.
	runner Runner
}

// DescribeOption customizes a DescribeProvider.
type DescribeOption func(*DescribeProvider)

// errNoCommand is reported when the provider has nothing to run.
var errNoCommand = errors.New("no describe command configured")

// WithRunner replaces the command runner.
func WithRunner(runner Runner) DescribeOption {
	return func(p *DescribeProvider) {
		p.runner = runner
	}
}

// WithDir sets the working directory of the describe command.
func WithDir(dir string) DescribeOption {
	return func(p *DescribeProvider) {
		p.dir = dir
	}
}

// WithTimeout bounds the describe command. Non-positive values disable the bound.
func WithTimeout(timeout time.Duration) DescribeOption {
	return func(p *DescribeProvider) {
		p.timeout = timeout
	}
}

// NewDescribeProvider returns a provider running argv, e.g. git describe --tags.
func NewDescribeProvider(argv []string, opts ...DescribeOption) *DescribeProvider {
	provider := &DescribeProvider{
		argv:   append([]string(nil), argv...),
		runner: ExecRunner{},
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider
}

// Name implements Provider.
func (p *DescribeProvider) Name() string {
	return "describe:" + strings.Join(p.argv, " ")
}

// Provide implements Provider.
func (p *DescribeProvider) Provide(ctx context.Context) (string, error) {
	if len(p.argv) == 0 {
		return "", errNoCommand
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	output, err := p.runner.Run(ctx, p.dir, p.argv[0], p.argv[1:]...)
	if err != nil {
		return "", fmt.Errorf("run %s: %w", p.argv[0], err)
	}

	return strings.TrimSpace(string(output)), nil
}
