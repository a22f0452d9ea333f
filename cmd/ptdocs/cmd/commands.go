package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/ptdocs/internal/docs"
	"github.com/oshokin/ptdocs/internal/service/render"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the documented version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := render.Resolve(cmd.Context(), &render.Options{ConfigPath: configPath, LevelFromFlag: logLevel != ""})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), resolved)

			return err
		},
	}
}

func newConfCmd() *cobra.Command {
	var (
		format string
		output string
	)

	names := make([]string, 0, len(docs.Formats()))
	for _, f := range docs.Formats() {
		names = append(names, string(f))
	}

	conf := &cobra.Command{
		Use:   "conf",
		Short: "Render the documentation configuration.",
		Long:  "Render the documentation configuration as a Sphinx conf.py (default), YAML, JSON or an RST prolog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := docs.ParseFormat(format)
			if err != nil {
				return err
			}

			return render.Run(cmd.Context(), &render.Options{
				ConfigPath:    configPath,
				LevelFromFlag: logLevel != "",
				Format:        parsed,
				Output:        output,
				Stdout:        cmd.OutOrStdout(),
			})
		},
	}

	conf.Flags().StringVarP(&format, "format", "f", string(docs.FormatPython),
		"output format: "+strings.Join(names, ", "))
	conf.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return conf
}

func newPrologCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prolog",
		Short: "Print the reStructuredText prolog with project substitutions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.Run(cmd.Context(), &render.Options{
				ConfigPath:    configPath,
				LevelFromFlag: logLevel != "",
				Format:        docs.FormatProlog,
				Stdout:        cmd.OutOrStdout(),
			})
		},
	}
}

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Show which version sources were tried and which one won.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := render.Sources(cmd.Context(), &render.Options{
				ConfigPath:    configPath,
				LevelFromFlag: logLevel != "",
				Stdout:        cmd.OutOrStdout(),
			})

			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a settings file with the default values.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			return render.Init(cmd.Context(), path, force)
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")

	return initCmd
}
