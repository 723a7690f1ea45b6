package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curveforge/meshsync/internal/app"
)

func (c *CLI) newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <document> <source>",
		Short: "Create a new mesh target linked to a source object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetName, _ := cmd.Flags().GetString("target")
			out, _ := cmd.Flags().GetString("out")

			result, err := c.app.Link(cmd.Context(), args[0], app.LinkOptions{
				Source: args[1],
				Target: targetName,
				Out:    out,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(),
				"linked mesh created: %s (mesh %s, collection %s, debounce %.2fs)\n",
				result.Target, result.Mesh, result.Collection, result.Debounce)
			return nil
		},
	}
	cmd.Flags().StringP("target", "t", "", "Name for the new target object (defaults to <source>_mesh)")
	cmd.Flags().StringP("out", "o", "", "Write the updated document to this path instead of overwriting it")
	return cmd
}
