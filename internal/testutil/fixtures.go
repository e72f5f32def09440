package testutil

import (
	"github.com/alexanderramin/pincecheck/internal/domain"
)

// Seeded admin credentials.
const (
	AdminUser     = "admin"
	AdminPassword = "password123"
)

// General options
type GeneralOption func(*domain.GeneralInfo)

func WithInspector(r domain.InspectorRole) GeneralOption {
	return func(g *domain.GeneralInfo) {
		g.Inspector = r
	}
}

func WithOperatorName(name string) GeneralOption {
	return func(g *domain.GeneralInfo) {
		g.Name = name
	}
}

// NewTestGeneral returns the general info used across round-trip tests.
func NewTestGeneral(opts ...GeneralOption) domain.GeneralInfo {
	g := domain.GeneralInfo{
		Name:      "Jean",
		Date:      "2024-05-01",
		Robot:     "R12",
		Post:      "P3",
		Line:      "L2",
		Inspector: domain.RoleOP,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// AllVerified returns a checkbox map with every catalog item ticked.
func AllVerified() map[domain.ChecklistItemID]bool {
	out := make(map[domain.ChecklistItemID]bool, domain.ItemCount())
	for _, item := range domain.Items() {
		out[item.ID] = true
	}
	return out
}

// VerifiedExcept returns a checkbox map with every item ticked except ko.
func VerifiedExcept(ko ...domain.ChecklistItemID) map[domain.ChecklistItemID]bool {
	out := AllVerified()
	for _, id := range ko {
		out[id] = false
	}
	return out
}

// NewTestRemediation returns the remediation used in the KO round-trip tests.
func NewTestRemediation() domain.Remediation {
	return domain.Remediation{
		Action:     "Remplacer électrode",
		Pilot:      "Ali",
		Deadline:   "2024-06-01",
		Status:     domain.StatusInProgress,
		Validation: "N/A",
	}
}
