package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Session holds all mutable state of one operator's use of the tool.
// Exactly one value exists per TUI run or replay; it is passed explicitly
// to the flow controller and never shared between operators.
type Session struct {
	ID            string
	Authenticated bool
	Operator      string
	CurrentPage   Page
	CurrentMenu   Menu
	KOChecks      []ChecklistItemID
	Answers       Answers
}

// NewSession returns an unauthenticated session on the main page.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset restores every field to its default, as on a fresh session.
func (s *Session) Reset() {
	s.ID = uuid.New().String()
	s.Authenticated = false
	s.Operator = ""
	s.CurrentPage = PageMain
	s.CurrentMenu = MenuHome
	s.KOChecks = nil
	s.Answers = make(Answers)
}

// Get returns the answer for key, or "" when unset.
func (s *Session) Get(key FieldKey) string {
	return s.Answers.Get(key)
}

// Set overwrites the answer for key.
func (s *Session) Set(key FieldKey, value string) {
	if s.Answers == nil {
		s.Answers = make(Answers)
	}
	s.Answers.Set(key, value)
}

// IsKO reports whether id is in the current KO list.
func (s *Session) IsKO(id ChecklistItemID) bool {
	return slices.Contains(s.KOChecks, id)
}

// ReplaceKOChecks installs a freshly computed KO list. When purgeStale is
// set, remediation answers of items that dropped out of the list are removed.
func (s *Session) ReplaceKOChecks(ko []ChecklistItemID, purgeStale bool) {
	if purgeStale {
		for _, item := range catalog {
			if !slices.Contains(ko, item.ID) {
				s.Answers.purgeRemediation(item.ID)
			}
		}
	}
	s.KOChecks = ko
}
