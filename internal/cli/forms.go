package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pincecheck/internal/cli/formatter"
	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pincecheckHuhTheme returns a custom huh theme using the formatter palette.
func pincecheckHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✔] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(pincecheckHuhTheme()).WithShowHelp(false)
}

// validateOptionalDate accepts blank input or YYYY-MM-DD.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("format AAAA-MM-JJ attendu")
	}
	return nil
}

// dateInput returns a huh.Input for an optional date field.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(domain.DateLayout).
		Value(value).
		Validate(validateOptionalDate)
}

// ── login ────────────────────────────────────────────────────────────────────

type loginFields struct {
	username string
	password string
}

func (f *loginFields) action() flow.Action {
	return flow.Login{Username: f.username, Password: f.password}
}

func loginForm(f *loginFields) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nom d'utilisateur").
				Value(&f.username),
			huh.NewInput().
				Title("Mot de passe").
				EchoMode(huh.EchoModePassword).
				Value(&f.password),
		).Title("Veuillez entrer vos identifiants :"),
	)
}

// ── main checklist ───────────────────────────────────────────────────────────

type mainFields struct {
	name      string
	date      string
	robot     string
	post      string
	line      string
	inspector domain.InspectorRole
	verified  []domain.ChecklistItemID
}

// newMainFields prefills the main form from the session answers. A blank
// date defaults to today and checkboxes restore their last submitted state.
func newMainFields(s *domain.Session, today string) *mainFields {
	g := s.Answers.General().Normalize()
	f := &mainFields{
		name:      g.Name,
		date:      domain.Coalesce(g.Date, today),
		robot:     g.Robot,
		post:      g.Post,
		line:      g.Line,
		inspector: g.Inspector,
	}
	for _, item := range domain.Items() {
		if s.Answers.Verified(item.ID) {
			f.verified = append(f.verified, item.ID)
		}
	}
	return f
}

func (f *mainFields) action() flow.Action {
	verified := make(map[domain.ChecklistItemID]bool, len(f.verified))
	for _, id := range f.verified {
		verified[id] = true
	}
	return flow.SubmitMain{
		General: domain.GeneralInfo{
			Name:      f.name,
			Date:      f.date,
			Robot:     f.robot,
			Post:      f.post,
			Line:      f.line,
			Inspector: f.inspector,
		},
		Verified: verified,
	}
}

func mainForm(f *mainFields) *huh.Form {
	checks := make([]huh.Option[domain.ChecklistItemID], 0, domain.ItemCount())
	for _, item := range domain.Items() {
		checks = append(checks, huh.NewOption(item.Text, item.ID))
	}
	roles := make([]huh.Option[domain.InspectorRole], 0, len(domain.InspectorRoles))
	for _, r := range domain.InspectorRoles {
		roles = append(roles, huh.NewOption(string(r), r))
	}

	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Nom").Value(&f.name),
			dateInput("Date", &f.date),
			huh.NewInput().Title("Robot").Value(&f.robot),
			huh.NewInput().Title("Post").Value(&f.post),
			huh.NewInput().Title("Ligne").Value(&f.line),
		).Title("Veuillez remplir le formulaire ci-dessous :"),
		huh.NewGroup(
			huh.NewMultiSelect[domain.ChecklistItemID]().
				Title("Vérifications").
				Description("espace : cocher OK · les points non cochés sont KO").
				Options(checks...).
				Filterable(false).
				Height(domain.ItemCount()+2).
				Value(&f.verified),
		),
		huh.NewGroup(
			huh.NewSelect[domain.InspectorRole]().
				Title("Qui vérifie ?").
				Options(roles...).
				Value(&f.inspector),
		),
	)
}

// ── KO remediation ───────────────────────────────────────────────────────────

type koEntry struct {
	id         domain.ChecklistItemID
	action     string
	pilot      string
	deadline   string
	status     domain.RemediationStatus
	validation string
}

type koFields struct {
	entries []*koEntry
}

// newKOFields prefills one entry per KO item from the session answers.
func newKOFields(s *domain.Session, today string) *koFields {
	f := &koFields{}
	for _, id := range s.KOChecks {
		r := s.Answers.Remediation(id).Normalize()
		e := &koEntry{
			id:         id,
			action:     r.Action,
			pilot:      r.Pilot,
			deadline:   domain.Coalesce(r.Deadline, today),
			status:     r.Status,
			validation: r.Validation,
		}
		f.entries = append(f.entries, e)
	}
	return f
}

func (f *koFields) action() flow.Action {
	out := make(map[domain.ChecklistItemID]domain.Remediation, len(f.entries))
	for _, e := range f.entries {
		out[e.id] = domain.Remediation{
			Action:     e.action,
			Pilot:      e.pilot,
			Deadline:   e.deadline,
			Status:     e.status,
			Validation: e.validation,
		}
	}
	return flow.SubmitRemediation{Remediations: out}
}

// koForm builds one group per KO item. It returns nil when there is
// nothing to fill in.
func koForm(f *koFields) *huh.Form {
	if len(f.entries) == 0 {
		return nil
	}
	statuses := make([]huh.Option[domain.RemediationStatus], 0, len(domain.RemediationStatuses))
	for _, st := range domain.RemediationStatuses {
		statuses = append(statuses, huh.NewOption(st.Label(), st))
	}

	groups := make([]*huh.Group, 0, len(f.entries))
	for _, e := range f.entries {
		groups = append(groups, huh.NewGroup(
			huh.NewText().
				Title("Action à mettre en place").
				Lines(3).
				Value(&e.action),
			huh.NewInput().Title("Pilote").Value(&e.pilot),
			dateInput("Délai", &e.deadline),
			huh.NewSelect[domain.RemediationStatus]().
				Title("État").
				Options(statuses...).
				Value(&e.status),
			huh.NewInput().Title("Validation CA").Value(&e.validation),
		).Title("Problème : "+domain.MustItem(e.id).Text))
	}
	return newForm(groups...)
}
