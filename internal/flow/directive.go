package flow

import "github.com/alexanderramin/pincecheck/internal/domain"

// Screen is what the presentation layer must draw next.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenMain     Screen = "main"
	ScreenKODetail Screen = "ko_detail"
	ScreenSummary  Screen = "summary"
	ScreenAbout    Screen = "about"
	ScreenContact  Screen = "contact"
)

// Messages surfaced to the operator.
const (
	NoticeLoggedIn  = "Connexion réussie !"
	NoticeSubmitted = "Formulaire soumis avec succès !"
	NoticeLoggedOut = "Déconnecté."
)

// Directive is the result of a transition: the screen to render plus an
// optional notice. Err carries a recoverable failure to show on that screen.
type Directive struct {
	Screen Screen
	Notice string
	Err    error
}

// ScreenFor derives the screen from the session. The menu wins over the
// page, and the home flow is gated behind authentication.
func ScreenFor(s *domain.Session) Screen {
	switch s.CurrentMenu {
	case domain.MenuAbout:
		return ScreenAbout
	case domain.MenuContact:
		return ScreenContact
	}
	if !s.Authenticated {
		return ScreenLogin
	}
	switch s.CurrentPage {
	case domain.PageKODetail:
		return ScreenKODetail
	case domain.PageSummary:
		return ScreenSummary
	default:
		return ScreenMain
	}
}
