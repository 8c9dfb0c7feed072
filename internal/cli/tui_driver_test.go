package cli

import (
	"testing"

	"github.com/alexanderramin/workplan/internal/teatest"
	"github.com/alexanderramin/workplan/internal/workplan"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, dashboard cursor, flash line) the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sizes the terminal and drains
// Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 60))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Dashboard returns the dashboard at the bottom of the stack.
func (d *TestDriver) Dashboard() *dashboardView {
	return d.appModel().viewStack[0].(*dashboardView)
}

// Current returns the dashboard row under the cursor.
func (d *TestDriver) Current() dashRow {
	d.T.Helper()
	row, ok := d.Dashboard().current()
	if !ok {
		d.T.Fatal("dashboard has no row under the cursor")
	}
	return row
}

// Plan returns the plan held by the App.
func (d *TestDriver) Plan() workplan.Plan {
	return d.appModel().state.Plan()
}

// Flash returns the transient line above the status bar.
func (d *TestDriver) Flash() string {
	return d.appModel().flash
}

// StatusBar returns the rendered key hints.
func (d *TestDriver) StatusBar() string {
	m := d.appModel()
	return m.renderStatusBar()
}

// IsQuitting reports whether the model asked to exit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
