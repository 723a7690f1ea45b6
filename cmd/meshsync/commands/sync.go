package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/curveforge/meshsync/internal/app"
	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/engine/sync"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync <document>",
		Short: "Regenerate linked meshes from their source objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			includeDisabled, _ := cmd.Flags().GetBool("include-disabled")
			out, _ := cmd.Flags().GetString("out")

			reports, err := c.app.Sync(cmd.Context(), args[0], app.SyncOptions{
				Source:          source,
				IncludeDisabled: includeDisabled,
				Out:             out,
			})
			if err != nil {
				return err
			}
			return renderReports(cmd, reports)
		},
	}
	cmd.Flags().StringP("source", "s", "", "Regenerate only the meshes linked to this source object")
	cmd.Flags().Bool("include-disabled", false, "Also regenerate targets with auto-update switched off")
	cmd.Flags().StringP("out", "o", "", "Write the regenerated document to this path")
	return cmd
}

func renderReports(cmd *cobra.Command, reports []sync.Report) error {
	out := cmd.OutOrStdout()

	failures := 0
	for _, report := range reports {
		switch {
		case report.SourceMissing:
			_, _ = fmt.Fprintf(out, "%s: source not found\n", report.Source)
		case report.Unchanged:
			_, _ = fmt.Fprintf(out, "%s: unchanged\n", report.Source)
		default:
			_, _ = fmt.Fprintf(out, "%s: %d regenerated\n", report.Source, report.Rebuilt())
		}
		for _, failure := range report.Failures() {
			failures++
			_, _ = fmt.Fprintf(out, "  %s: %v\n", failure.Target, failure.Err)
		}
	}

	if failures > 0 {
		return zerr.With(zerr.Wrap(domain.ErrBuildFailed, ""), "failed_targets", failures)
	}
	return nil
}
