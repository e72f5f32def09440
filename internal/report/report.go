// Package report assembles the summary shown before final submission.
// It is a pure read of a session: nothing here mutates answers.
package report

import "github.com/alexanderramin/pincecheck/internal/domain"

// NoKONotice is shown under the KO table when no item failed.
const NoKONotice = "Aucune vérification KO trouvée."

// KOHeaders are the column titles of the KO table.
var KOHeaders = []string{
	"Vérification",
	"Action à mettre en place",
	"Pilote",
	"Délai",
	"État",
	"Validation CA",
}

// GeneralHeaders are the column titles of the general table, in form order.
func GeneralHeaders() []string {
	out := make([]string, len(domain.GeneralFields))
	for i, f := range domain.GeneralFields {
		out[i] = string(f)
	}
	return out
}

// KORow is one failed item with its action plan.
type KORow struct {
	Item        domain.ChecklistItem
	Remediation domain.Remediation
}

// Report is the summary of one session.
type Report struct {
	Operator string
	General  domain.GeneralInfo
	KO       []KORow
}

// Assemble builds the report from the session answers. KO rows follow the
// session KO list, so remediation answers kept for items that are no longer
// KO never show up.
func Assemble(s *domain.Session) Report {
	r := Report{
		Operator: s.Operator,
		General:  s.Answers.General(),
		KO:       make([]KORow, 0, len(s.KOChecks)),
	}
	for _, id := range s.KOChecks {
		r.KO = append(r.KO, KORow{
			Item:        domain.MustItem(id),
			Remediation: s.Answers.Remediation(id),
		})
	}
	return r
}

// HasKO reports whether at least one item failed.
func (r Report) HasKO() bool { return len(r.KO) > 0 }

// GeneralRows returns the general table body: always exactly one row.
func (r Report) GeneralRows() [][]string {
	g := r.General
	return [][]string{{g.Name, g.Date, g.Robot, g.Post, g.Line, string(g.Inspector)}}
}

// KORows returns the KO table body, one row per failed item.
func (r Report) KORows() [][]string {
	rows := make([][]string, 0, len(r.KO))
	for _, row := range r.KO {
		rem := row.Remediation
		rows = append(rows, []string{
			row.Item.Text,
			rem.Action,
			rem.Pilot,
			rem.Deadline,
			rem.Status.Label(),
			rem.Validation,
		})
	}
	return rows
}
