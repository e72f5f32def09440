// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of a tea.Program, the Driver calls Update directly and runs every
// returned Cmd inline, feeding the resulting messages back until the model
// settles. Cmds that block (cursor blink timers) are abandoned after a short
// timeout so a test never waits on them.
package teatest

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds a single input may trigger.
const MaxDrainDepth = 100

// cmdTimeout separates message factories, which return at once, from
// timer-driven Cmds such as cursor blinks (~530ms).
const cmdTimeout = 10 * time.Millisecond

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Driver is a synchronous harness around a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg is produced. The runtime normally
	// swallows that message, so the driver records it itself.
	Quitting bool

	// Seen lists the type of every message fed to the model, in order.
	Seen []string
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit afterwards to run Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// DrainInit runs the model's Init Cmd to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds msg to the model and drains whatever it triggers.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.update(msg, 0)
}

// ── keys ─────────────────────────────────────────────────────────────────────

// SendKeyType sends a non-rune key such as tea.KeyTab or tea.KeyF2.
func (d *Driver) SendKeyType(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressKey sends a single rune.
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

// TypeLine types s then presses Enter.
func (d *Driver) TypeLine(s string) {
	d.T.Helper()
	d.Type(s)
	d.PressEnter()
}

// PressEnter and the helpers below send one special key each.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.SendKeyType(tea.KeyEnter)
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.SendKeyType(tea.KeyEsc)
}

func (d *Driver) PressTab() {
	d.T.Helper()
	d.SendKeyType(tea.KeyTab)
}

func (d *Driver) PressSpace() {
	d.T.Helper()
	d.SendKeyType(tea.KeySpace)
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.SendKeyType(tea.KeyUp)
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.SendKeyType(tea.KeyDown)
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.SendKeyType(tea.KeyCtrlC)
}

// ── output ───────────────────────────────────────────────────────────────────

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns View with ANSI escape sequences removed.
func (d *Driver) PlainView() string {
	return ansiPattern.ReplaceAllString(d.Model.View(), "")
}

// ViewContains reports whether the plain view contains s.
func (d *Driver) ViewContains(s string) bool {
	return strings.Contains(d.PlainView(), s)
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) update(msg tea.Msg, depth int) {
	d.Seen = append(d.Seen, fmt.Sprintf("%T", msg))
	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
	default:
		d.update(msg, depth)
	}
}

// runWithTimeout runs cmd and returns its message, or nil when it does not
// return within cmdTimeout.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor,
// which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
