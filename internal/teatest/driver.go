// Package teatest drives bubbletea models synchronously in tests.
//
// The Driver stands in for tea.Program: it calls Update directly and runs
// every returned Cmd inline, feeding the resulting messages back into the
// model until nothing is left. Cmds that block (cursor blink timers, or a
// wait on a plan-change channel) are abandoned after a short timeout.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// MaxDrainDepth bounds how many chained Cmds a single Send may run.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates message factories, which return in
// microseconds, from Cmds that wait on a timer or channel.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg comes out of a drained Cmd.
	Quitting bool

	cmdTimeout time.Duration
	skipped    int
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize sends an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

// New builds a Driver. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init() and every message it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressKeyType sends a non-rune key such as tea.KeyTab.
func (d *Driver) PressKeyType(k tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter()     { d.T.Helper(); d.PressKeyType(tea.KeyEnter) }
func (d *Driver) PressEsc()       { d.T.Helper(); d.PressKeyType(tea.KeyEsc) }
func (d *Driver) PressCtrlC()     { d.T.Helper(); d.PressKeyType(tea.KeyCtrlC) }
func (d *Driver) PressUp()        { d.T.Helper(); d.PressKeyType(tea.KeyUp) }
func (d *Driver) PressDown()      { d.T.Helper(); d.PressKeyType(tea.KeyDown) }
func (d *Driver) PressLeft()      { d.T.Helper(); d.PressKeyType(tea.KeyLeft) }
func (d *Driver) PressRight()     { d.T.Helper(); d.PressKeyType(tea.KeyRight) }
func (d *Driver) PressTab()       { d.T.Helper(); d.PressKeyType(tea.KeyTab) }
func (d *Driver) PressShiftTab()  { d.T.Helper(); d.PressKeyType(tea.KeyShiftTab) }
func (d *Driver) PressBackspace() { d.T.Helper(); d.PressKeyType(tea.KeyBackspace) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// RequireViewContains fails the test unless every fragment is on screen.
func (d *Driver) RequireViewContains(fragments ...string) {
	d.T.Helper()
	view := d.View()
	for _, f := range fragments {
		require.Contains(d.T, view, f)
	}
}

// RequireViewNotContains fails the test if any fragment is on screen.
func (d *Driver) RequireViewNotContains(fragments ...string) {
	d.T.Helper()
	view := d.View()
	for _, f := range fragments {
		require.NotContains(d.T, view, f)
	}
}

// Skipped reports how many Cmds were abandoned after timing out.
func (d *Driver) Skipped() int {
	return d.skipped
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := d.execCmd(cmd)
	if !ok {
		d.skipped++
		return
	}
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drainCmd(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// execCmd runs cmd on its own goroutine and gives up after the driver's
// timeout. An abandoned goroutine may still complete later; its message is
// dropped.
func (d *Driver) execCmd(cmd tea.Cmd) (tea.Msg, bool) {
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

// isCursorBlink matches the unexported blink messages of bubbles/cursor.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
