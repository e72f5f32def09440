package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/pincecheck/internal/cli/formatter"
	"github.com/alexanderramin/pincecheck/internal/replay"
	"github.com/alexanderramin/pincecheck/internal/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newReplayCmd(app *App) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run a scripted inspection and print the summary",
		Long: `Replay a YAML list of actions (login, submit_main, submit_remediation,
back, final_submit, logout, menu) against a fresh session and print the
resulting summary. A step may set "expect" to the screen it must reach and
"expect_error: true" when it is meant to fail.

In submit_main every item is KO unless verified: "checked" lists the verified
items, "unchecked" lists the KO items with the rest verified, and
"all_checked: true" verifies the whole checklist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := replay.ParseFile(args[0])
			if err != nil {
				return err
			}

			res, runErr := replay.Run(cmd.Context(), app.Flow, script)
			out := cmd.OutOrStdout()
			writeSteps(out, res)
			if runErr != nil {
				return runErr
			}

			if asYAML {
				return writeAnswersYAML(out, res)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatReport(report.Assemble(res.Session)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the recorded answers as YAML (legacy keys) instead of tables")
	return cmd
}

func writeSteps(w io.Writer, res *replay.Result) {
	if res == nil {
		return
	}
	for _, st := range res.Steps {
		line := fmt.Sprintf("%2d  %-18s → %s", st.Index, st.Action, st.Directive.Screen)
		switch {
		case st.Directive.Err != nil:
			line += "  " + formatter.Error(errorText(st.Directive.Err))
		case st.Directive.Notice != "":
			line += "  " + formatter.Success(st.Directive.Notice)
		}
		fmt.Fprintln(w, line)
	}
}

// answersDoc is the YAML export of a replayed session.
type answersDoc struct {
	Operator string            `yaml:"operator"`
	KO       []string          `yaml:"ko"`
	Answers  map[string]string `yaml:"answers"`
}

func writeAnswersYAML(w io.Writer, res *replay.Result) error {
	doc := answersDoc{
		Operator: res.Session.Operator,
		KO:       make([]string, 0, len(res.Session.KOChecks)),
		Answers:  res.Session.Answers.Flat(),
	}
	for _, id := range res.Session.KOChecks {
		doc.KO = append(doc.KO, id.String())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	return enc.Close()
}
