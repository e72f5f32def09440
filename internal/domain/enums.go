package domain

// Page is the position of the session in the checklist flow.
type Page string

const (
	PageMain     Page = "main"
	PageKODetail Page = "ko_detail"
	PageSummary  Page = "summary"
)

// Menu is the top-level navigation destination. It is orthogonal to Page
// and takes priority over it when choosing what to render.
type Menu string

const (
	MenuHome    Menu = "home"
	MenuAbout   Menu = "about"
	MenuContact Menu = "contact"
)

// ValidMenus is the canonical set of accepted menu values.
var ValidMenus = map[Menu]bool{
	MenuHome: true, MenuAbout: true, MenuContact: true,
}

// Label returns the navigation label shown to operators.
func (m Menu) Label() string {
	switch m {
	case MenuAbout:
		return "À propos"
	case MenuContact:
		return "Contact/Help"
	default:
		return "Accueil"
	}
}

// InspectorRole identifies who performed the inspection.
type InspectorRole string

const (
	RoleFAB   InspectorRole = "FAB"
	RoleOP    InspectorRole = "OP"
	RoleMaint InspectorRole = "Maint"
)

// InspectorRoles lists the roles in form order; the first one is the default.
var InspectorRoles = []InspectorRole{RoleFAB, RoleOP, RoleMaint}

// Valid reports whether r is one of the known roles.
func (r InspectorRole) Valid() bool {
	for _, known := range InspectorRoles {
		if r == known {
			return true
		}
	}
	return false
}

// RemediationStatus tracks progress of the action plan for a KO item.
type RemediationStatus string

const (
	StatusInProgress RemediationStatus = "IN_PROGRESS"
	StatusDone       RemediationStatus = "DONE"
)

// RemediationStatuses lists statuses in form order; the first one is the default.
var RemediationStatuses = []RemediationStatus{StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s RemediationStatus) Valid() bool {
	return s == StatusInProgress || s == StatusDone
}

// Label returns the operator-facing label.
func (s RemediationStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "En cours"
	case StatusDone:
		return "Terminé"
	default:
		return string(s)
	}
}
