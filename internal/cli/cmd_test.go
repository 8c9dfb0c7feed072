package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/workplan/internal/config"
	"github.com/alexanderramin/workplan/internal/export"
	"github.com/alexanderramin/workplan/internal/repository"
	"github.com/alexanderramin/workplan/internal/service"
	"github.com/alexanderramin/workplan/internal/testutil"
	"github.com/alexanderramin/workplan/internal/workplan"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// testApp wires an App over the seed plan, an in-memory history database and
// a temporary export directory.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	cfg := config.DefaultConfig()
	cfg.ExportDir = t.TempDir()

	store := workplan.NewStore(workplan.Seed(), workplan.NewClockIDs(fixedClock))
	records := repository.NewSQLiteExportRecordRepo(database)

	return &App{
		Config:  &cfg,
		Plan:    service.NewPlanService(store),
		Exports: service.NewExportService(cfg.ExportDir, records, testutil.NewTestUoW(database), cfg.HistoryLimit),
		Now:     fixedClock,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(new(bytes.Buffer))
	if args == nil {
		// nil makes cobra fall back to os.Args.
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func exportPath(app *App) string {
	return filepath.Join(app.Config.ExportDir, "workplan-2025-03-14.json")
}

// --- Root command ---

func TestRootCmd_NonInteractivePrintsPlan(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "PLAN DE OPTIMIZACIÓN DE CAPITAL")
	assert.Contains(t, out, "Discovery & Assessment")
	assert.Contains(t, out, "Ejecución de medidas")
}

func TestRootCmd_InteractiveOpensDashboard(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	var got tea.Model
	app.RunDashboard = func(ctx context.Context, m tea.Model) error {
		got = m
		return nil
	}

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Empty(t, out)
	require.NotNil(t, got)
	_, ok := got.(appModel)
	assert.True(t, ok, "dashboard runs the appModel")
}

func TestDashboardCmd_AliasUI(t *testing.T) {
	app := testApp(t)
	calls := 0
	app.RunDashboard = func(ctx context.Context, m tea.Model) error {
		calls++
		return nil
	}

	_, err := executeCmd(t, app, "ui")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRootCmd_WireRunsOnceWithParsedFlags(t *testing.T) {
	base := testApp(t)
	dir := t.TempDir()

	var wired []config.Config
	app := &App{Config: base.Config, Now: fixedClock}
	app.Wire = func(cfg config.Config) error {
		wired = append(wired, cfg)
		app.Plan = base.Plan
		app.Exports = base.Exports
		return nil
	}

	_, err := executeCmd(t, app, "--export-dir", dir, "--history=false", "show")
	require.NoError(t, err)
	require.Len(t, wired, 1)
	assert.Equal(t, dir, wired[0].ExportDir)
	assert.False(t, wired[0].HistoryEnabled)

	_, err = executeCmd(t, app, "show")
	require.NoError(t, err)
	assert.Len(t, wired, 1)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--history-limit=-1", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history limit")

	app = testApp(t)
	_, err = executeCmd(t, app, "--log-level", "loud", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "show", "extra")
	require.Error(t, err)
}

// --- show ---

func TestShowCmd_ListsPhasesInOrder(t *testing.T) {
	app := testApp(t)
	app.Plan.Dispatch(context.Background(), workplan.MovePhase{PhaseID: "1", Direction: "down"})

	out, err := executeCmd(t, app, "show")
	require.NoError(t, err)

	first := bytes.Index([]byte(out), []byte("Analysis & Modeling"))
	second := bytes.Index([]byte(out), []byte("Discovery & Assessment"))
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
	assert.Contains(t, out, "0/4")
}

// --- export ---

func TestExportCmd_WritesDatedFile(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 4 phases and 6 tasks to "+exportPath(app))

	data, err := os.ReadFile(exportPath(app))
	require.NoError(t, err)
	want, err := export.Marshal(app.Plan.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(data))
}

func TestExportCmd_SecondExportSameDayKeepsFirst(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join(app.Config.ExportDir, "workplan-2025-03-14-1.json"))
	assert.FileExists(t, exportPath(app))
}

func TestExportCmd_Stdout(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "export", "--stdout")
	require.NoError(t, err)

	want, err := export.Marshal(app.Plan.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, string(want)+"\n", out)
	assert.NoFileExists(t, exportPath(app))
}

func TestExportCmd_WriteFailure(t *testing.T) {
	app := testApp(t)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	app.Exports = service.NewExportService(blocker, nil, nil, 0)

	out, err := executeCmd(t, app, "export")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exporting plan")
	assert.NotContains(t, out, "Exported")
}

// --- history ---

func TestHistoryCmd_ListsExports(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No exports recorded yet.")

	_, err = executeCmd(t, app, "export")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "workplan-2025-03-14.json")
	assert.Contains(t, out, "Just now")
}

func TestHistoryCmd_Limit(t *testing.T) {
	app := testApp(t)
	for range 3 {
		_, err := executeCmd(t, app, "export")
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "workplan-2025-03-14-2.json")
	assert.NotContains(t, out, "workplan-2025-03-14-1.json")
}

func TestHistoryCmd_Disabled(t *testing.T) {
	app := testApp(t)
	app.Exports = service.NewExportService(app.Config.ExportDir, nil, nil, 0)

	_, err := executeCmd(t, app, "history")
	require.ErrorIs(t, err, service.ErrHistoryDisabled)
}

func TestHistoryShowCmd_ShortAndFullID(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	records, err := app.Exports.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	id := records[0].ID

	out, err := executeCmd(t, app, "history", "show", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "EXPORT")
	assert.Contains(t, out, id)
	assert.Contains(t, out, exportPath(app))
	assert.Contains(t, out, records[0].SHA256)

	out, err = executeCmd(t, app, "history", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "workplan-2025-03-14.json")
}

func TestHistoryShowCmd_UnknownID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "history", "show", "deadbeef")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = executeCmd(t, app, "history", "show")
	require.Error(t, err)
}
