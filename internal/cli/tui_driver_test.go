package cli

import (
	"testing"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/alexanderramin/pincecheck/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals: the
// active view, the session and the last directive outcome.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── high-level helpers ───────────────────────────────────────────────────────

// Login fills the login form field by field.
func (d *TestDriver) Login(username, password string) {
	d.T.Helper()
	d.TypeLine(username)
	d.TypeLine(password)
}

// Act applies a flow action as if the active view had emitted it.
func (d *TestDriver) Act(a flow.Action) {
	d.T.Helper()
	d.Send(actionMsg{action: a})
}

// ── inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ID of the view on screen, or -1 when none.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.appModel().active
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the title of the view on screen.
func (d *TestDriver) ActiveViewTitle() string {
	v := d.appModel().active
	if v == nil {
		return ""
	}
	return v.Title()
}

// Screen returns the flow screen the model last switched to.
func (d *TestDriver) Screen() flow.Screen {
	return d.appModel().screen
}

// State returns the SharedState pointer.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Session returns the session owned by the TUI.
func (d *TestDriver) Session() *domain.Session {
	return d.State().Session
}
