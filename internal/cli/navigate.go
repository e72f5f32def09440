package cli

import (
	"github.com/alexanderramin/pincecheck/internal/flow"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages used by views to drive the session. The appModel handles these
// in its Update method; views never touch the session directly.

// actionMsg asks the appModel to apply an operator action.
type actionMsg struct {
	action flow.Action
}

// quitMsg stops the program.
type quitMsg struct{}

// applyAction returns a tea.Cmd that emits an actionMsg.
func applyAction(a flow.Action) tea.Cmd {
	return func() tea.Msg { return actionMsg{action: a} }
}
