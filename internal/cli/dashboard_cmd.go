package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

func runDashboard(cmd *cobra.Command, app *App) error {
	m := newAppModel(app)
	if app.RunDashboard != nil {
		return app.RunDashboard(cmd.Context(), m)
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
