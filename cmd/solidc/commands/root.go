// Package commands implements the CLI commands for solidc.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/solidc/internal/app"
	"go.trai.ch/solidc/internal/build"
	"go.trai.ch/solidc/internal/core/domain"
)

// CLI represents the command line interface for solidc.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "solidc",
		Short:         "Compile script files with the Solid or React transform, chosen per file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.ConfigureLogging(jsonMode, verbose)
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newExplainCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// addFileFlags registers the flags describing how source files are compiled.
func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().String("arch", string(domain.ArchBrowser), "Target architecture (web.* for client bundles)")
	cmd.Flags().String("package", "", "Package the files belong to; empty for the application")
	cmd.Flags().Bool("hmr", false, "Files support hot module reloading")
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	arch, _ := cmd.Flags().GetString("arch")
	pkg, _ := cmd.Flags().GetString("package")
	hmr, _ := cmd.Flags().GetBool("hmr")

	opts := app.RunOptions{
		Arch:    domain.Arch(arch),
		Package: pkg,
		HMR:     hmr,
	}
	if f := cmd.Flags().Lookup("out"); f != nil {
		opts.Out = f.Value.String()
	}
	if f := cmd.Flags().Lookup("no-cache"); f != nil {
		opts.NoCache, _ = cmd.Flags().GetBool("no-cache")
	}
	return opts
}
