package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/gradplan/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// driverCmdTimeout leaves room for planner writes to the in-memory
// database. Cursor blink Cmds from the picker input still time out, so
// each typed rune costs at most this long.
const driverCmdTimeout = 100 * time.Millisecond

// NewTestDriver builds the appModel without a planner subscription, sets
// the terminal size and drains Init, which loads the plan view.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app, nil)
	d := teatest.New(t, m, teatest.WithSize(120, 60), teatest.WithCmdTimeout(driverCmdTimeout))
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

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Flash returns the current one-line notice.
func (d *TestDriver) Flash() string {
	return d.appModel().state.Flash
}

// PlanView returns the plan view at the bottom of the stack.
func (d *TestDriver) PlanView() *planView {
	d.T.Helper()
	v, ok := d.appModel().viewStack[0].(*planView)
	if !ok {
		d.T.Fatalf("bottom view is %T, want *planView", d.appModel().viewStack[0])
	}
	return v
}

// Screen returns the rendered output without ANSI escapes.
func (d *TestDriver) Screen() string {
	return plain(d.View())
}
