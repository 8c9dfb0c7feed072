package cli

import (
	"fmt"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded exports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Exports.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(records, app.now()))
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of records to list (0 lists all)")
	cmd.AddCommand(newHistoryShowCmd(app))

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded export; short ids from the list work too",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Exports.Record(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExportRecord(rec, app.now()))
			return err
		},
	}
}
