package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ptdocs/internal/logger"
	"github.com/oshokin/ptdocs/internal/version"
)

var (
	// configPath is an explicit settings file; empty means discovery.
	configPath string
	// logLevel overrides the minimum level written to stderr.
	logLevel string

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = newRootCmd()
)

// errInvalidLogLevel is returned for unknown --log-level values.
var errInvalidLogLevel = errors.New("invalid log level")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ptdocs",
		Short: "Generate PT documentation configuration.",
		Long: `Generate the Sphinx configuration for PT - Clipboard to File Tool with Smart Version Management.

The documented version is taken from the first VERSION file found among the
configured candidates, then from the VCS describe command, then from a
fallback literal. Resolution never fails.

Settings are read from --config, or from ptdocs.yaml in the working directory,
$HOME/.config/ptdocs or $HOME. Without a settings file the defaults reproduce
the hand-written conf.py.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logLevel == "" {
				return nil
			}

			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("%w: %q", errInvalidLogLevel, logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to ptdocs settings file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newResolveCmd(),
		newConfCmd(),
		newPrologCmd(),
		newSourcesCmd(),
		newInitCmd(),
	)

	version.AttachCobraVersionCommand(root)

	return root
}

// Execute runs the ptdocs CLI and exits with non-zero status on error.
func Execute() {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		logger.ErrorKV(ctx, "ptdocs failed", "error", err)
		os.Exit(1)
	}
}
