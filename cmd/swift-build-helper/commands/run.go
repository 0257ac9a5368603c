package commands

import (
	"github.com/spf13/cobra"
	"github.com/swiftbuild/helper/internal/adapters/config"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a full session from a session file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			return c.components.App.RunSession(cmd.Context(), path)
		},
	}

	cmd.Flags().StringP("config", "c", config.DefaultFilename, "Path to the session file")

	return cmd
}
