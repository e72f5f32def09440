package cli

import (
	"github.com/alexanderramin/pincecheck/internal/cli/formatter"
	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var staticHomeKey = key.NewBinding(key.WithKeys("esc", "h"), key.WithHelp("h", "retour au menu"))

// staticView renders the About or Contact page.
type staticView struct {
	state *SharedState
	id    ViewID
	body  string
	vp    viewport.Model
}

func newStaticView(state *SharedState, id ViewID) *staticView {
	md := formatter.AboutMarkdown
	if id == ViewContact {
		md = formatter.ContactMarkdown
	}
	body, err := formatter.RenderMarkdown(md, state.WordWrap())
	if err != nil {
		body = md
	}

	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = scrollKeyMap()
	vp.SetContent(body)
	return &staticView{state: state, id: id, body: body, vp: vp}
}

func (v *staticView) Init() tea.Cmd { return nil }

func (v *staticView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case tea.KeyMsg:
		if key.Matches(msg, staticHomeKey) {
			return v, applyAction(flow.SelectMenu{Menu: domain.MenuHome})
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *staticView) View() string {
	if v.state.Height == 0 {
		return v.body
	}
	return v.vp.View()
}

func (v *staticView) ID() ViewID { return v.id }
func (v *staticView) Title() string {
	if v.id == ViewContact {
		return domain.MenuContact.Label()
	}
	return domain.MenuAbout.Label()
}
func (v *staticView) ShortHelp() []key.Binding {
	return []key.Binding{staticHomeKey}
}
