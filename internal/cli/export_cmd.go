package cli

import (
	"fmt"

	"github.com/alexanderramin/workplan/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plan to workplan-<date>.json",
		Long: `Write the plan as indented JSON to workplan-<YYYY-MM-DD>.json in the export
directory (--export-dir). An existing file is never overwritten; a numeric
suffix is added instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.Plan.Snapshot()
			out := cmd.OutOrStdout()

			if toStdout {
				data, err := export.Marshal(plan)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			rec, err := app.Exports.Export(cmd.Context(), plan, app.now())
			if rec != nil {
				fmt.Fprintf(out, "Exported %d phases and %d tasks to %s\n", rec.PhaseCount, rec.TaskCount, rec.Path)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the JSON instead of writing a file")

	return cmd
}
