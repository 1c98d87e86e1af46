package domain

import (
	"context"
	"time"
)

// Event represents one lamp lighting ceremony. The identifier is an
// 8-digit string chosen by the client (the server only verifies
// uniqueness); the host password is a 9-character string unique across all
// events and doubles as the host login token.
type Event struct {
	ID           string    `json:"event_id"`
	TopHeader    string    `json:"top_heading"`
	BottomHeader string    `json:"bottom_heading"`
	SoundURL     string    `json:"sound_url"`
	HostPassword string    `json:"-"`
	CurrentLight int       `json:"current_light"`
	CurrentGuest int       `json:"current_guest"`
	IsStart      bool      `json:"is_start"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewEvent returns a new Event with counters at their initial values.
func NewEvent(id, topHeader, bottomHeader, soundURL, hostPassword string, createdAt time.Time) *Event {
	return &Event{
		ID:           id,
		TopHeader:    topHeader,
		BottomHeader: bottomHeader,
		SoundURL:     soundURL,
		HostPassword: hostPassword,
		CreatedAt:    createdAt,
	}
}

// State returns the mutable counter triple of the event.
func (e *Event) State() CeremonyState {
	return CeremonyState{
		CurrentLight: e.CurrentLight,
		CurrentGuest: e.CurrentGuest,
		IsStart:      e.IsStart,
	}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	// Create inserts the event. The store's uniqueness constraints are the
	// source of truth for conflicts: Create returns ErrEventIDInUse or
	// ErrPasswordInUse when an insert collides.
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetByPassword(ctx context.Context, password string) (*Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByPassword(ctx context.Context, password string) (bool, error)
	GetState(ctx context.Context, id string) (CeremonyState, error)
	SetStart(ctx context.Context, id string, isStart bool) (CeremonyState, error)
	// UpdateStateAtomic runs apply against the current counters and the
	// roster size as one atomic read-modify-write on the event row. When
	// apply returns an error nothing is written and the error is returned
	// unwrapped so callers can match it with errors.Is.
	UpdateStateAtomic(ctx context.Context, id string, apply func(st CeremonyState, totalGuests int) (CeremonyState, error)) (CeremonyState, error)
}
