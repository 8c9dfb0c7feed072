// Package teatest drives a bubbletea model synchronously in tests.
//
// The Driver calls Update directly and drains the returned Cmds in order,
// so a test sees the same message sequence a tea.Program would deliver
// without starting a renderer or reading a terminal.
//
// Cmds that block (cursor blink timers) are abandoned after the configured
// timeout.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one Send may follow.
const MaxDrainDepth = 100

// DefaultCmdTimeout is how long a Cmd may run before the driver skips it.
// Message factories and file writes finish well inside it; blink timers
// sleep for about half a second.
const DefaultCmdTimeout = 100 * time.Millisecond

// Driver is a synchronous harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been drained. The bubbletea
	// runtime normally swallows that message, so the driver records it.
	Quitting bool

	// Skipped counts Cmds abandoned because they exceeded the timeout.
	Skipped int

	cmdTimeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) {
		d.cmdTimeout = timeout
	}
}

// New creates a Driver for model. Options run in order, so WithCmdTimeout
// should precede WithSize when both are given. Call DrainInit afterwards to
// process the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg through Update and drains the resulting Cmds.
// It does nothing after the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// ── keys ─────────────────────────────────────────────────────────────────────

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// PressType sends a key of type k, e.g. tea.KeyShiftUp.
func (d *Driver) PressType(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.PressType(tea.KeyEnter)
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.PressType(tea.KeyEsc)
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.PressType(tea.KeyCtrlC)
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.PressType(tea.KeyUp)
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.PressType(tea.KeyDown)
}

// PressDownN moves down n times.
func (d *Driver) PressDownN(n int) {
	d.T.Helper()
	for range n {
		d.PressDown()
	}
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := d.run(cmd)
	if !ok {
		d.Skipped++
		return
	}
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	if d.Quitting {
		return
	}
	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// run executes cmd on its own goroutine and waits up to the timeout.
func (d *Driver) run(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d.cmdTimeout):
		return nil, false
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor,
// which chain into timer Cmds when fed back.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
