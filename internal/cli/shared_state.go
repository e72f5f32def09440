package cli

import (
	"time"

	"github.com/alexanderramin/pincecheck/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Session is the single session owned by this TUI run.
	Session *domain.Session

	// Outcome of the last applied action.
	Notice string
	Err    error

	// Terminal dimensions
	Width  int
	Height int
}

// Today returns the current date in answer format, used as the default of
// empty date fields.
func (s *SharedState) Today() string {
	now := time.Now
	if s.App != nil && s.App.Now != nil {
		now = s.App.Now
	}
	return now().Format(domain.DateLayout)
}

// WordWrap returns the column width for markdown pages.
func (s *SharedState) WordWrap() int {
	wrap := 80
	if s.App != nil && s.App.Config != nil && s.App.Config.WordWrap > 0 {
		wrap = s.App.Config.WordWrap
	}
	if s.Width > 0 && s.Width-4 < wrap {
		wrap = max(s.Width-4, 20)
	}
	return wrap
}

// ContentHeight returns the available height for view content,
// accounting for the banner (2 lines), the title bar (2 lines: title +
// separator), the notice line, and the status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 7
	if h < 1 {
		return 1
	}
	return h
}
