package domain

import "errors"

// Shared sentinel errors. Services and repositories return these (possibly
// wrapped); the HTTP layer maps them to status codes with errors.Is.
var (
	ErrNotFound      = errors.New("event not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrPasswordInUse = errors.New("password already in use")
	ErrEventIDInUse  = errors.New("event ID already in use")
)

// Boundary errors returned by Transition when an action would move the
// counters outside their valid range. Each is distinct so a client can
// disable the corresponding control.
var (
	ErrNoMoreGuests   = errors.New("no more guests to light")
	ErrAtLastGuest    = errors.New("already at the last guest")
	ErrAtFirstGuest   = errors.New("already at the first guest")
	ErrAtLampFloor    = errors.New("no lit lamps to turn back")
	ErrNoGuestsToSkip = errors.New("no guests to skip")
)
