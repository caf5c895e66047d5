package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/anvil/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the configured target for this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			configFile, _ := cmd.Flags().GetString("config")
			return c.app.Build(cmd.Context(), app.RunOptions{
				DryRun:     dryRun,
				ConfigFile: configFile,
			})
		},
	}
	cmd.Flags().Bool("dry-run", false, "Print the invocation plan without executing it")
	return cmd
}
