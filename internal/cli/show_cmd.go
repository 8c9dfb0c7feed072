package cli

import (
	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/config"
	"github.com/alexanderramin/workplan/internal/workplan"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the plan as a phase/task tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPlan(cmd, app)
		},
	}
}

func formatPlan(cfg *config.Config, p workplan.Plan) string {
	return formatter.FormatPlan(cfg.Title, cfg.Subtitle, p)
}
