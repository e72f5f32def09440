// Package flow is the page controller of the inspection checklist: a
// transition function over domain.Session that decides which screen comes
// next and performs the side effects of each operator action.
package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/service"
)

// Authenticator verifies operator credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*domain.Operator, error)
}

// StalePolicy decides what happens to remediation answers of items that are
// no longer KO after the main form is resubmitted.
type StalePolicy string

const (
	StalePurge StalePolicy = "purge"
	StaleKeep  StalePolicy = "keep"
)

// ParseStalePolicy accepts "purge" or "keep".
func ParseStalePolicy(s string) (StalePolicy, error) {
	switch StalePolicy(s) {
	case StalePurge, StaleKeep:
		return StalePolicy(s), nil
	}
	return "", fmt.Errorf("unknown stale remediation policy %q (want purge or keep)", s)
}

// allowedActions lists, per screen, the actions an operator can trigger
// there. Logout is handled separately: it is valid on any screen once
// authenticated.
var allowedActions = map[Screen]map[string]bool{
	ScreenLogin:    {"login": true, "select_menu": true},
	ScreenMain:     {"submit_main": true, "select_menu": true},
	ScreenKODetail: {"submit_remediation": true, "back": true, "select_menu": true},
	ScreenSummary:  {"back": true, "final_submit": true, "select_menu": true},
	ScreenAbout:    {"select_menu": true},
	ScreenContact:  {"select_menu": true},
}

// Controller applies operator actions to a session.
type Controller struct {
	auth     Authenticator
	policy   StalePolicy
	observer service.UseCaseObserver
}

// Option configures a Controller.
type Option func(*Controller)

// WithStalePolicy sets the stale remediation policy (default StalePurge).
func WithStalePolicy(p StalePolicy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithObserver reports every applied action to obs.
func WithObserver(obs service.UseCaseObserver) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observer = obs
		}
	}
}

// NewController creates a Controller that checks credentials with auth.
func NewController(auth Authenticator, opts ...Option) *Controller {
	c := &Controller{
		auth:     auth,
		policy:   StalePurge,
		observer: service.NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the stale remediation policy in effect.
func (c *Controller) Policy() StalePolicy { return c.policy }

// Current returns the directive for the session as it stands, without
// applying anything. Used to draw the first screen.
func (c *Controller) Current(s *domain.Session) Directive {
	return Directive{Screen: ScreenFor(s)}
}

// Apply runs one action against s and returns what to render next.
// A rejected action leaves s untouched and returns the current screen with
// the error both in the Directive and as the error result.
func (c *Controller) Apply(ctx context.Context, s *domain.Session, a Action) (d Directive, err error) {
	startedAt := time.Now().UTC()
	sessionID := s.ID
	from := ScreenFor(s)
	defer func() {
		c.observer.ObserveUseCase(ctx, UseCaseEvent(sessionID, a, from, d, err, startedAt))
	}()

	if !c.allowed(s, from, a) {
		err = fmt.Errorf("%s from %s: %w", actionName(a), from, domain.ErrInvalidTransition)
		return Directive{Screen: from, Err: err}, err
	}

	var notice string
	switch a := a.(type) {
	case Login:
		op, authErr := c.auth.Authenticate(ctx, a.Username, a.Password)
		if authErr != nil {
			return Directive{Screen: from, Err: authErr}, authErr
		}
		s.Authenticated = true
		s.Operator = op.Username
		s.CurrentPage = domain.PageMain
		notice = NoticeLoggedIn

	case SubmitMain:
		c.submitMain(s, a)

	case SubmitRemediation:
		for _, id := range s.KOChecks {
			s.Answers.SetRemediation(id, a.Remediations[id].Normalize())
		}
		s.CurrentPage = domain.PageSummary

	case Back:
		s.CurrentPage = domain.PageMain

	case FinalSubmit:
		notice = NoticeSubmitted

	case Logout:
		s.Reset()
		notice = NoticeLoggedOut

	case SelectMenu:
		if !domain.ValidMenus[a.Menu] {
			err = fmt.Errorf("menu %q: %w", a.Menu, domain.ErrInvalidTransition)
			return Directive{Screen: from, Err: err}, err
		}
		s.CurrentMenu = a.Menu

	default:
		err = fmt.Errorf("unsupported action %T: %w", a, domain.ErrInvalidTransition)
		return Directive{Screen: from, Err: err}, err
	}

	return Directive{Screen: ScreenFor(s), Notice: notice}, nil
}

// submitMain records the general fields and checkbox states, then derives
// the KO list. An unchecked item is KO: the default state means the check
// failed, not that it was skipped.
func (c *Controller) submitMain(s *domain.Session, a SubmitMain) {
	s.Answers.SetGeneral(a.General.Normalize())

	ko := make([]domain.ChecklistItemID, 0, domain.ItemCount())
	for _, item := range domain.Items() {
		verified := a.Verified[item.ID]
		s.Answers.SetVerified(item.ID, verified)
		if !verified {
			ko = append(ko, item.ID)
		}
	}
	s.ReplaceKOChecks(ko, c.policy == StalePurge)

	if len(ko) == 0 {
		s.CurrentPage = domain.PageSummary
		return
	}
	s.CurrentPage = domain.PageKODetail
}

func (c *Controller) allowed(s *domain.Session, from Screen, a Action) bool {
	if a == nil {
		return false
	}
	if _, ok := a.(Logout); ok {
		return s.Authenticated
	}
	return allowedActions[from][a.Name()]
}

// UseCaseEvent builds the observer event for one applied action.
func UseCaseEvent(sessionID string, a Action, from Screen, d Directive, err error, startedAt time.Time) service.UseCaseEvent {
	return service.UseCaseEvent{
		Name:      "transition",
		SessionID: sessionID,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields: map[string]any{
			"action": actionName(a),
			"from":   string(from),
			"to":     string(d.Screen),
		},
	}
}

func actionName(a Action) string {
	if a == nil {
		return "<nil>"
	}
	return a.Name()
}
