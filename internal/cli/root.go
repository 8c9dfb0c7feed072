package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/config"
	"github.com/alexanderramin/workplan/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds configuration and the services used by CLI commands.
type App struct {
	Config  *config.Config
	Plan    service.PlanService
	Exports service.ExportService

	// Wire, when set, builds Plan and Exports from Config once flags have
	// been parsed. It runs at most once per App.
	Wire func(cfg config.Config) error

	// IsInteractive reports whether the bare command may open the dashboard.
	IsInteractive func() bool

	// Now is the clock used for export file names. Nil means time.Now.
	Now func() time.Time

	// RunDashboard runs the dashboard model. Nil starts a full-screen
	// bubbletea program on the command's input and output.
	RunDashboard func(ctx context.Context, m tea.Model) error

	wired bool
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		cfg := config.DefaultConfig()
		a.Config = &cfg
	}
	return a.Config
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) wire() error {
	if err := a.config().Validate(); err != nil {
		return err
	}
	if a.Wire == nil || a.wired {
		return nil
	}
	if err := a.Wire(*a.Config); err != nil {
		return err
	}
	a.wired = true
	return nil
}

// NewRootCmd creates the top-level "workplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "workplan",
		Short: "Editable consulting work-plan dashboard",
		Long: `workplan keeps a multi-phase consulting work plan in memory and lets you
edit every field from a terminal dashboard, reorder phases, and export the
plan as workplan-<date>.json.

Without a subcommand it opens the dashboard when attached to a terminal and
prints the plan otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.wire()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(cmd, app)
			}
			return printPlan(cmd, app)
		},
	}

	app.config().BindFlags(root.PersistentFlags())

	root.AddCommand(
		newDashboardCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newHistoryCmd(app),
	)

	return root
}

func printPlan(cmd *cobra.Command, app *App) error {
	cfg := app.config()
	_, err := fmt.Fprint(cmd.OutOrStdout(), formatPlan(cfg, app.Plan.Snapshot()))
	return err
}
