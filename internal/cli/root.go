package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pincecheck/internal/config"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/alexanderramin/pincecheck/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the collaborators used by CLI commands and the TUI.
type App struct {
	Flow      *flow.Controller
	Operators service.OperatorService
	Config    *config.Config

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Now is the clock used for date defaults; nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pincecheck" command and registers all
// subcommands against the provided App. Without a subcommand it starts the
// inspection TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pincecheck",
		Short: "Welding clamp inspection checklist",
		Long: `Fiche d'Analyse et Contrôle d'État de Pince de Soudage.

Run without arguments to fill the checklist in the terminal UI.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the checklist needs an interactive terminal; use 'pincecheck replay' for scripted runs")
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newAboutCmd(app),
		newContactCmd(app),
		newReplayCmd(app),
		newOperatorCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
