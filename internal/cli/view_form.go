package cli

import (
	"github.com/alexanderramin/pincecheck/internal/cli/formatter"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView wraps a huh.Form as a View. When the form completes it emits
// the action built by submit; Esc emits cancel when one is set.
type formView struct {
	state    *SharedState
	id       ViewID
	form     *huh.Form
	titleStr string
	submit   func() flow.Action
	cancel   flow.Action
	sent     bool
}

func newFormView(state *SharedState, id ViewID, title string, form *huh.Form, submit func() flow.Action) *formView {
	return &formView{
		state:    state,
		id:       id,
		form:     form,
		titleStr: title,
		submit:   submit,
	}
}

// withCancel sets the action sent on Esc.
func (v *formView) withCancel(a flow.Action) *formView {
	v.cancel = a
	return v
}

func newLoginView(state *SharedState) *formView {
	f := &loginFields{}
	return newFormView(state, ViewLogin, formatter.TitleLogin, loginForm(f), f.action)
}

func newMainFormView(state *SharedState) *formView {
	f := newMainFields(state.Session, state.Today())
	return newFormView(state, ViewMain, formatter.TitleMain, mainForm(f), f.action)
}

func newKOFormView(state *SharedState) *formView {
	f := newKOFields(state.Session, state.Today())
	return newFormView(state, ViewKODetail, formatter.TitleKODetail, koForm(f), f.action).
		withCancel(flow.Back{})
}

func (v *formView) Init() tea.Cmd {
	if v.form == nil {
		return nil
	}
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.sent {
		return v, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		if v.cancel == nil {
			return v, nil
		}
		v.sent = true
		return v, applyAction(v.cancel)
	}
	// A KO form without KO items has nothing to ask: submit on Enter.
	if v.form == nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
			v.sent = true
			return v, applyAction(v.submit())
		}
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.sent = true
		return v, tea.Batch(cmd, applyAction(v.submit()))
	}
	return v, cmd
}

func (v *formView) View() string {
	if v.form == nil {
		return formatter.Dim("Rien à remplir. Entrée pour continuer.")
	}
	return v.form.View()
}

func (v *formView) ID() ViewID    { return v.id }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "suivant")),
	}
	if v.id == ViewMain {
		hints = append(hints, key.NewBinding(key.WithKeys(" "), key.WithHelp("espace", "cocher")))
	}
	if v.cancel != nil {
		hints = append(hints, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "retour")))
	}
	return hints
}
