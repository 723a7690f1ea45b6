package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links <document>",
		Short: "List the link records tying targets to source objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")

			infos, err := c.app.Links(cmd.Context(), args[0], source)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(infos) == 0 {
				_, _ = fmt.Fprintln(out, "no links")
				return nil
			}

			w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TARGET\tSOURCE\tAUTO\tDEBOUNCE\tMODIFIERS\tNOTE")
			for _, info := range infos {
				name := info.Source
				if info.Dangling {
					name += " (missing)"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%t\t%.2fs\t%t\t%s\n",
					info.Target, name, info.AutoUpdate, info.Debounce, info.ApplyModifiers, info.Note)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringP("source", "s", "", "Only list links referencing this source object")
	return cmd
}
