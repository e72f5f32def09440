package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pincecheck/internal/cli/formatter"
	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type globalKeyMap struct {
	Home    key.Binding
	About   key.Binding
	Contact key.Binding
	Logout  key.Binding
	Quit    key.Binding
}

// Function keys work everywhere; digits only when no text input has focus.
var globalKeys = globalKeyMap{
	Home:    key.NewBinding(key.WithKeys("f1", "1"), key.WithHelp("F1", domain.MenuHome.Label())),
	About:   key.NewBinding(key.WithKeys("f2", "2"), key.WithHelp("F2", domain.MenuAbout.Label())),
	Contact: key.NewBinding(key.WithKeys("f3", "3"), key.WithHelp("F3", domain.MenuContact.Label())),
	Logout:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "déconnexion")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quitter")),
}

// appModel is the root bubbletea Model for the TUI. It owns the session,
// hands every operator action to the flow controller, and swaps the active
// view to whatever screen the resulting directive names.
type appModel struct {
	state    *SharedState
	active   View
	screen   flow.Screen
	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:     app,
		Session: domain.NewSession(),
	}
	m := appModel{state: state}
	m.screen = app.Flow.Current(state.Session).Screen
	m.active = newViewFor(state, m.screen)
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if m.active == nil {
		return nil
	}
	return m.active.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case actionMsg:
		return m.apply(msg.action)

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m.forward(msg)
}

// apply runs one action through the controller and redraws. A rejected
// action keeps the current view so typed input survives, unless that view
// already handed off its form.
func (m appModel) apply(a flow.Action) (tea.Model, tea.Cmd) {
	d, err := m.state.App.Flow.Apply(context.Background(), m.state.Session, a)
	m.state.Notice = d.Notice
	m.state.Err = err

	if err != nil && d.Screen == m.screen && !viewSpent(m.active) {
		return m, nil
	}

	m.screen = d.Screen
	m.active = newViewFor(m.state, d.Screen)
	var cmds []tea.Cmd
	cmds = append(cmds, m.active.Init())
	if m.state.Width > 0 {
		size := tea.WindowSizeMsg{Width: m.state.Width, Height: m.state.Height}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	capturing := viewCapturesInput(m.active)
	isFn := msg.Type == tea.KeyF1 || msg.Type == tea.KeyF2 || msg.Type == tea.KeyF3

	if isFn || !capturing {
		switch {
		case key.Matches(msg, globalKeys.Home):
			return m.apply(flow.SelectMenu{Menu: domain.MenuHome})
		case key.Matches(msg, globalKeys.About):
			return m.apply(flow.SelectMenu{Menu: domain.MenuAbout})
		case key.Matches(msg, globalKeys.Contact):
			return m.apply(flow.SelectMenu{Menu: domain.MenuContact})
		}
	}
	if key.Matches(msg, globalKeys.Logout) && m.state.Session.Authenticated {
		return m.apply(flow.Logout{})
	}
	if !capturing && key.Matches(msg, globalKeys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.active == nil {
		return m, nil
	}
	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		formatter.RenderBanner(),
		m.renderHeader(),
		m.renderNotice(),
	}
	if m.active != nil {
		sections = append(sections, m.active.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	var tabs []string
	for _, menu := range []domain.Menu{domain.MenuHome, domain.MenuAbout, domain.MenuContact} {
		label := menu.Label()
		if menu == m.state.Session.CurrentMenu {
			tabs = append(tabs, formatter.StyleBrand.Render("["+label+"]"))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}
	header := strings.Join(tabs, formatter.Dim(" │ "))
	if m.active != nil {
		header += "  " + formatter.Dim("›") + " " + formatter.Bold(m.active.Title())
	}
	if op := m.state.Session.Operator; op != "" {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(op) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderNotice() string {
	switch {
	case m.state.Err != nil:
		return formatter.Error(errorText(m.state.Err))
	case m.state.Notice != "":
		return formatter.Success(m.state.Notice)
	default:
		return ""
	}
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.active != nil {
		for _, b := range m.active.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	hints = append(hints, formatter.Dim("F1/F2/F3: menu"))
	if m.state.Session.Authenticated {
		hints = append(hints, formatter.Dim(globalKeys.Logout.Help().Key+": "+globalKeys.Logout.Help().Desc))
	}
	hints = append(hints, formatter.Dim("ctrl+c: quitter"))

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// errorText maps known errors to operator-facing messages.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return "Nom d'utilisateur ou mot de passe invalide"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "Action impossible sur cette page"
	default:
		return fmt.Sprintf("Erreur : %v", err)
	}
}

// viewSpent reports whether v already emitted its action and cannot take
// more input.
func viewSpent(v View) bool {
	fv, ok := v.(*formView)
	return ok && fv.sent
}
