package cli

import (
	"fmt"

	"github.com/alexanderramin/pincecheck/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newOperatorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Manage operators allowed to log in",
	}
	cmd.AddCommand(
		newOperatorAddCmd(app),
		newOperatorListCmd(app),
	)
	return cmd
}

func newOperatorAddCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Add an operator (password stored with bcrypt)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				if !app.interactive() {
					return fmt.Errorf("--password is required when not running in a terminal")
				}
				if err := passwordForm(&password).Run(); err != nil {
					return err
				}
			}

			op, err := app.Operators.AddOperator(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Operator %s added (%s)\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(op.Username), op.Scheme)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newOperatorListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := app.Operators.ListOperators(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(ops))
			for _, op := range ops {
				rows = append(rows, []string{op.Username, string(op.Scheme), formatter.HumanDate(op.CreatedAt)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"UTILISATEUR", "SCHÉMA", "CRÉÉ"}, rows))
			return nil
		},
	}
}

// passwordForm prompts for a new password twice.
func passwordForm(password *string) *huh.Form {
	var confirm string
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mot de passe").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("mot de passe requis")
					}
					return nil
				}),
			huh.NewInput().
				Title("Confirmer").
				EchoMode(huh.EchoModePassword).
				Value(&confirm).
				Validate(func(s string) error {
					if s != *password {
						return fmt.Errorf("les mots de passe ne correspondent pas")
					}
					return nil
				}),
		),
	)
}
