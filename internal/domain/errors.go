package domain

import "errors"

var (
	// ErrAuthenticationFailed is returned when a username/password pair does
	// not match a known operator.
	ErrAuthenticationFailed = errors.New("invalid username or password")

	// ErrUnknownItem is returned for a checklist id outside the catalog.
	ErrUnknownItem = errors.New("unknown checklist item")

	// ErrInvalidTransition is returned when an action is not allowed from
	// the screen the session is currently on.
	ErrInvalidTransition = errors.New("invalid transition")
)
