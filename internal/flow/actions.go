package flow

import "github.com/alexanderramin/pincecheck/internal/domain"

// Action is one operator input handed to the controller.
type Action interface {
	// Name identifies the action in logs and errors.
	Name() string
}

// Login submits credentials from the login screen.
type Login struct {
	Username string
	Password string
}

// SubmitMain submits the main checklist form. Verified holds the checkbox
// state of each item; a missing or false entry means the item is KO.
type SubmitMain struct {
	General  domain.GeneralInfo
	Verified map[domain.ChecklistItemID]bool
}

// SubmitRemediation submits the action plans for the current KO items.
// Entries for items that are not KO are ignored.
type SubmitRemediation struct {
	Remediations map[domain.ChecklistItemID]domain.Remediation
}

// Back returns to the main form from KO detail or summary.
type Back struct{}

// FinalSubmit confirms the summary. Nothing is persisted.
type FinalSubmit struct{}

// Logout resets the session.
type Logout struct{}

// SelectMenu switches the top-level menu.
type SelectMenu struct {
	Menu domain.Menu
}

func (Login) Name() string             { return "login" }
func (SubmitMain) Name() string        { return "submit_main" }
func (SubmitRemediation) Name() string { return "submit_remediation" }
func (Back) Name() string              { return "back" }
func (FinalSubmit) Name() string       { return "final_submit" }
func (Logout) Name() string            { return "logout" }
func (SelectMenu) Name() string        { return "select_menu" }
