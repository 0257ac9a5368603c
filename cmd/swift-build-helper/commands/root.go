// Package commands implements the CLI commands for swift-build-helper.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/swiftbuild/helper/internal/app"
	"github.com/swiftbuild/helper/internal/core/domain"
)

// CLI represents the command line interface for swift-build-helper.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
	verbose    bool
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "swift-build-helper",
		Short:         "Builds, tests and installs Swift products against an installed toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if l, ok := components.Logger.(interface{ SetVerbose(bool) }); ok {
			l.SetVerbose(c.verbose)
		}
	}

	rootCmd.AddCommand(c.newActionCmd(domain.ActionBuild))
	rootCmd.AddCommand(c.newActionCmd(domain.ActionTest))
	rootCmd.AddCommand(c.newActionCmd(domain.ActionInstall))
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newStatusCmd())
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

// SetOutput sets the output streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
