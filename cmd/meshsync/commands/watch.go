package commands

import (
	"github.com/spf13/cobra"

	"github.com/curveforge/meshsync/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <document>",
		Short: "Watch a document and keep its linked meshes in sync",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			includeDisabled, _ := cmd.Flags().GetBool("include-disabled")
			return c.app.Watch(cmd.Context(), args[0], app.SyncOptions{
				IncludeDisabled: includeDisabled,
			})
		},
	}
	cmd.Flags().Bool("include-disabled", false, "Also regenerate targets with auto-update switched off")
	return cmd
}
