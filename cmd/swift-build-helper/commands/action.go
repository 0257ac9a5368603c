package commands

import (
	"github.com/spf13/cobra"
	"github.com/swiftbuild/helper/internal/core/domain"
	"go.trai.ch/zerr"
)

var actionShorts = map[domain.Action]string{
	domain.ActionBuild:   "Build a product with the toolchain's package manager",
	domain.ActionTest:    "Run a product's test suite",
	domain.ActionInstall: "Build a product and copy the binary into the install path",
}

// newActionCmd creates one of the direct helper commands. All three share
// the invocation flag surface; only install requires an install path.
func (c *CLI) newActionCmd(action domain.Action) *cobra.Command {
	cmd := &cobra.Command{
		Use:   action.String(),
		Short: actionShorts[action],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := c.invocationFromFlags(cmd)
			if err != nil {
				return err
			}
			product, _ := cmd.Flags().GetString("product")
			return c.components.App.RunAction(cmd.Context(), action, product, inv)
		},
	}

	cmd.Flags().String("package-path", "", "Directory containing the Swift package")
	cmd.Flags().String("build-path", "", "Scratch directory for intermediate and output artifacts")
	cmd.Flags().String("toolchain", "", "Root of the installed toolchain providing the swift binary")
	cmd.Flags().String("install-path", "", "Destination directory for the installed binary")
	cmd.Flags().String("configuration", "release", "Build configuration (debug|release)")
	cmd.Flags().String("prefix", "", "Install prefix (accepted for compatibility, unused)")
	cmd.Flags().String("product", "swift-backtrace", "Product to act on")

	_ = cmd.MarkFlagRequired("package-path")
	_ = cmd.MarkFlagRequired("build-path")
	_ = cmd.MarkFlagRequired("toolchain")
	if action == domain.ActionInstall {
		_ = cmd.MarkFlagRequired("install-path")
	}

	return cmd
}

func (c *CLI) invocationFromFlags(cmd *cobra.Command) (domain.Invocation, error) {
	configuration, _ := cmd.Flags().GetString("configuration")
	mode := domain.Mode(configuration)
	if mode != domain.ModeDebug && mode != domain.ModeRelease {
		return domain.Invocation{}, zerr.With(zerr.New("invalid configuration"), "configuration", configuration)
	}

	packagePath, _ := cmd.Flags().GetString("package-path")
	buildPath, _ := cmd.Flags().GetString("build-path")
	toolchain, _ := cmd.Flags().GetString("toolchain")
	installPath, _ := cmd.Flags().GetString("install-path")
	prefix, _ := cmd.Flags().GetString("prefix")

	return domain.Invocation{
		Mode:          mode,
		Verbose:       c.verbose,
		PackagePath:   packagePath,
		BuildPath:     buildPath,
		ToolchainPath: toolchain,
		InstallPath:   installPath,
		Prefix:        prefix,
	}, nil
}
