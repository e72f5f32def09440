package cli

import (
	"fmt"

	"github.com/alexanderramin/pincecheck/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAboutCmd(app *App) *cobra.Command {
	return newStaticCmd(app, "about", "Show what this tool is for", formatter.AboutMarkdown)
}

func newContactCmd(app *App) *cobra.Command {
	return newStaticCmd(app, "contact", "Show support contacts", formatter.ContactMarkdown)
}

func newStaticCmd(app *App, use, short, md string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wrap := 80
			if app.Config != nil {
				wrap = app.Config.WordWrap
			}
			out, err := formatter.RenderMarkdown(md, wrap)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
