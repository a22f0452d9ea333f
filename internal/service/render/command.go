package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/ptdocs/internal/config"
	"github.com/oshokin/ptdocs/internal/docs"
	"github.com/oshokin/ptdocs/internal/logger"
	"github.com/oshokin/ptdocs/internal/resolver"
)

// Options contains inputs shared by the render entry points.
type Options struct {
	// ConfigPath is an explicit settings file. Empty means discover, then defaults.
	ConfigPath string
	// Format selects the renderer for Run. Empty means conf.py.
	Format docs.Format
	// Output is the destination file for Run. Empty means Stdout.
	Output string
	// Stdout receives rendered output when Output is empty.
	Stdout io.Writer
	// LevelFromFlag keeps the log level chosen on the command line over the settings file.
	LevelFromFlag bool
	// DescribeOptions customize the describe step, mainly for tests.
	DescribeOptions []resolver.DescribeOption
}

// outputFileMode is the permission of rendered files.
const outputFileMode os.FileMode = 0o644

// Run resolves the version, builds the configuration and renders it.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "render")

	format := opts.Format
	if format == "" {
		format = docs.FormatPython
	}

	cfg, err := buildConfiguration(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		return docs.Render(stdout(opts), cfg, format)
	}

	if err := writeFileAtomic(opts.Output, func(w io.Writer) error {
		return docs.Render(w, cfg, format)
	}); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Documentation configuration written",
		"path", opts.Output, "format", format, "version", cfg.Version())

	return nil
}

// Resolve loads settings and returns the resolved version.
func Resolve(ctx context.Context, opts *Options) (string, error) {
	ctx = logger.WithName(ctx, "resolve")

	settings, err := loadSettings(ctx, opts)
	if err != nil {
		return "", err
	}

	return resolveVersion(ctx, settings, opts), nil
}

// resolveVersion runs the resolver chain and warns when only the fallback was left.
func resolveVersion(ctx context.Context, settings *config.Config, opts *Options) string {
	attempts := resolver.FromSettings(&settings.Version, opts.DescribeOptions...).Trace(ctx)
	winner := attempts[len(attempts)-1]

	if winner.Provider == resolver.FallbackName {
		logger.WarnKV(ctx, "No version source found, using fallback", "version", winner.Value)
	} else {
		logger.DebugKV(ctx, "Resolved documentation version", "provider", winner.Provider, "version", winner.Value)
	}

	return winner.Value
}

// buildConfiguration runs the whole pipeline short of rendering.
func buildConfiguration(ctx context.Context, opts *Options) (*docs.Configuration, error) {
	settings, err := loadSettings(ctx, opts)
	if err != nil {
		return nil, err
	}

	version := resolveVersion(ctx, settings, opts)

	cfg, err := docs.Build(&settings.Docs, version)
	if err != nil {
		return nil, fmt.Errorf("build documentation configuration: %w", err)
	}

	return cfg, nil
}

// loadSettings loads the explicit file or discovers one, logging the source.
func loadSettings(ctx context.Context, opts *Options) (*config.Config, error) {
	settings, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok && !opts.LevelFromFlag {
		logger.SetLevel(level)
	}

	if settings.Path() == "" {
		logger.Debug(ctx, "No settings file found, using defaults")
	} else {
		logger.DebugKV(ctx, "Loaded settings", "path", settings.Path())
	}

	return settings, nil
}

// writeFileAtomic renders into a temporary sibling and renames it over path.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}

	if err = tmp.Chmod(outputFileMode); err != nil {
		return fmt.Errorf("chmod temporary file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

func stdout(opts *Options) io.Writer {
	if opts.Stdout != nil {
		return opts.Stdout
	}

	return os.Stdout
}
