package formatter

import (
	"strings"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/report"
)

// Page titles.
const (
	TitleLogin    = "Login"
	TitleMain     = "Fiche d’Analyse et Contrôle d’État de Pince de Soudage"
	TitleKODetail = "Problèmes Identifiés"
	TitleSummary  = "Résumé du Formulaire"
)

// koCellWidth caps the checklist text column of the KO table.
const koCellWidth = 48

// RenderBanner draws the two-line brand header.
func RenderBanner() string {
	return StyleBrand.Render("GROUP") + "\n" + StyleBold.Render("RENAULT")
}

// FormatReport renders the summary: the general table, then the KO table or
// the no-KO notice.
func FormatReport(r report.Report) string {
	var b strings.Builder

	b.WriteString(Header("Informations Générales"))
	b.WriteString("\n")
	b.WriteString(RenderTable(report.GeneralHeaders(), blankRows(r.GeneralRows())))
	b.WriteString("\n")

	b.WriteString(Header("Vérifications KO"))
	b.WriteString("\n")
	if !r.HasKO() {
		b.WriteString(Dim(report.NoKONotice))
		b.WriteString("\n")
		return b.String()
	}

	rows := r.KORows()
	for i, row := range r.KO {
		rows[i][4] = StatusPill(row.Remediation.Status)
	}
	b.WriteString(RenderTableWidth(report.KOHeaders, blankRows(rows), koCellWidth))
	return b.String()
}

// FormatChecklist lists every item with its recorded state, for the
// summary footer and the replay output.
func FormatChecklist(s *domain.Session) string {
	var b strings.Builder
	for _, item := range domain.Items() {
		b.WriteString(CheckMark(!s.IsKO(item.ID)))
		b.WriteString("  ")
		b.WriteString(item.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func blankRows(rows [][]string) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = Blank(cell)
		}
	}
	return rows
}
