package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile files and write the results to the output directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Compile(cmd.Context(), args, runOptions(cmd))
		},
	}
	addFileFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "Output directory (defaults to the configured one)")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the artifact cache and force compilation")
	return cmd
}

func (c *CLI) newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [files...]",
		Short: "Show the strategy and compiler options chosen for each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Explain(cmd.Context(), args, runOptions(cmd))
		},
	}
	addFileFlags(cmd)
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove cached artifacts and compiled output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context())
		},
	}
}
