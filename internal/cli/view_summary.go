package cli

import (
	"strings"

	"github.com/alexanderramin/pincecheck/internal/cli/formatter"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/alexanderramin/pincecheck/internal/report"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type summaryKeyMap struct {
	Back   key.Binding
	Submit key.Binding
	Logout key.Binding
}

var summaryKeys = summaryKeyMap{
	Back:   key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "retour")),
	Submit: key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "soumettre")),
	Logout: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "déconnexion")),
}

// summaryView shows the assembled report in a scrollable viewport.
type summaryView struct {
	state *SharedState
	vp    viewport.Model
}

func newSummaryView(state *SharedState) *summaryView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = scrollKeyMap()
	vp.SetContent(renderSummary(state))
	return &summaryView{state: state, vp: vp}
}

func renderSummary(state *SharedState) string {
	var b strings.Builder
	b.WriteString(formatter.FormatReport(report.Assemble(state.Session)))
	b.WriteString("\n")
	b.WriteString(formatter.Header("Vérifications"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatChecklist(state.Session))
	return b.String()
}

func (v *summaryView) Init() tea.Cmd { return nil }

func (v *summaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, summaryKeys.Back):
			return v, applyAction(flow.Back{})
		case key.Matches(msg, summaryKeys.Submit):
			return v, applyAction(flow.FinalSubmit{})
		case key.Matches(msg, summaryKeys.Logout):
			return v, applyAction(flow.Logout{})
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *summaryView) View() string {
	if v.state.Height == 0 {
		return renderSummary(v.state)
	}
	return v.vp.View()
}

func (v *summaryView) ID() ViewID    { return ViewSummary }
func (v *summaryView) Title() string { return formatter.TitleSummary }
func (v *summaryView) ShortHelp() []key.Binding {
	return []key.Binding{summaryKeys.Back, summaryKeys.Submit, summaryKeys.Logout}
}

// scrollKeyMap returns a restricted keymap for page viewports. Only
// arrow/page keys scroll; letter keys are left free for shortcuts.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
