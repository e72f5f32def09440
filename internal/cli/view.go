package cli

import (
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewLogin ViewID = iota
	ViewMain
	ViewKODetail
	ViewSummary
	ViewAbout
	ViewContact
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with identity and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // page title shown under the banner
}

// viewIDFor maps a flow screen to the view that draws it.
func viewIDFor(s flow.Screen) ViewID {
	switch s {
	case flow.ScreenMain:
		return ViewMain
	case flow.ScreenKODetail:
		return ViewKODetail
	case flow.ScreenSummary:
		return ViewSummary
	case flow.ScreenAbout:
		return ViewAbout
	case flow.ScreenContact:
		return ViewContact
	default:
		return ViewLogin
	}
}

// newViewFor builds a fresh view for screen, prefilled from the session.
func newViewFor(state *SharedState, s flow.Screen) View {
	switch s {
	case flow.ScreenMain:
		return newMainFormView(state)
	case flow.ScreenKODetail:
		return newKOFormView(state)
	case flow.ScreenSummary:
		return newSummaryView(state)
	case flow.ScreenAbout:
		return newStaticView(state, ViewAbout)
	case flow.ScreenContact:
		return newStaticView(state, ViewContact)
	default:
		return newLoginView(state)
	}
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing single-letter shortcuts).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewLogin, ViewMain, ViewKODetail:
		return true
	}
	return false
}
