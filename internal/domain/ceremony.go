package domain

import "context"

// Action is a host request to move the ceremony forward or backward.
type Action string

const (
	ActionLight Action = "light"
	ActionSkip  Action = "skip"
	ActionBack  Action = "back"
)

// ParseAction validates a raw action string from a request body.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionLight, ActionSkip, ActionBack:
		return Action(s), nil
	}
	return "", ErrInvalidInput
}

// CeremonyState is the mutable triple every client converges on.
// swagger:model CeremonyState
type CeremonyState struct {
	CurrentLight int  `json:"currentLight"`
	CurrentGuest int  `json:"currentGuest"`
	IsStart      bool `json:"isStart"`
}

// Transition computes the next ceremony state for an action, or returns a
// boundary error leaving the state unchanged. It is a pure function; the
// repository is responsible for running it atomically against the stored row.
//
// With no roster the ceremony is lamp-count-only: light has no upper bound
// (the caller stops at the physical lamp limit) and skip is meaningless.
// With a roster, light advances lamp and guest in lockstep, skip advances
// only the guest, and back retracts a lamp only when the departing guest
// position was the one that lit it (so undoing a skip never unlights).
func Transition(st CeremonyState, totalGuests int, action Action) (CeremonyState, error) {
	if totalGuests == 0 {
		switch action {
		case ActionLight:
			st.CurrentLight++
			return st, nil
		case ActionSkip:
			return st, ErrNoGuestsToSkip
		case ActionBack:
			if st.CurrentLight == 0 {
				return st, ErrAtLampFloor
			}
			st.CurrentLight--
			return st, nil
		}
		return st, ErrInvalidInput
	}

	switch action {
	case ActionLight:
		if st.CurrentGuest >= totalGuests {
			return st, ErrNoMoreGuests
		}
		st.CurrentLight++
		st.CurrentGuest++
		return st, nil
	case ActionSkip:
		if st.CurrentGuest >= totalGuests {
			return st, ErrAtLastGuest
		}
		st.CurrentGuest++
		return st, nil
	case ActionBack:
		if st.CurrentGuest == 0 {
			return st, ErrAtFirstGuest
		}
		if st.CurrentLight == st.CurrentGuest {
			st.CurrentLight--
		}
		st.CurrentGuest--
		return st, nil
	}
	return st, ErrInvalidInput
}

// EventInfo is the full-state payload a client fetches once at session
// start before entering its poll loop.
// swagger:model EventInfo
type EventInfo struct {
	EventID      string      `json:"eventId"`
	IsHost       bool        `json:"isHost"`
	TopHeader    string      `json:"topHeader"`
	BottomHeader string      `json:"bottomHeader"`
	SoundURL     string      `json:"soundUrl"`
	GuestsInfo   []GuestInfo `json:"guestsInfo"`
	CurrentLight int         `json:"currentLight"`
	CurrentGuest int         `json:"currentGuest"`
	IsStart      bool        `json:"isStart"`
}

// CeremonyService defines all ceremony operations exposed over HTTP.
type CeremonyService interface {
	// CreateEvent creates the event with counters (0, 0, false). If
	// hostEmail is non-empty a summary email is sent on a best-effort basis.
	CreateEvent(ctx context.Context, event *Event, hostEmail string) error
	// AddGuest appends a guest at the next roster position.
	AddGuest(ctx context.Context, eventID, title, name, imageURL string) (*Guest, error)
	// Resolve classifies the login token by exact length (8 = event ID,
	// 9 = host password) and returns the full event info.
	Resolve(ctx context.Context, token string) (*EventInfo, error)
	// Start writes is_start. Re-writing the same value is a no-op in effect.
	Start(ctx context.Context, eventID string, isStart bool) (CeremonyState, error)
	// Advance applies one action atomically and returns the new state.
	Advance(ctx context.Context, eventID string, action Action) (CeremonyState, error)
	// State returns the lightweight poll snapshot.
	State(ctx context.Context, eventID string) (CeremonyState, error)
	EventExists(ctx context.Context, eventID string) (bool, error)
	PasswordExists(ctx context.Context, password string) (bool, error)
}
