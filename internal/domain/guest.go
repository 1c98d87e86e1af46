package domain

import "context"

// Guest is one roster entry of an event. Guests are immutable once
// created: the roster is fixed at ceremony time, so no update or delete
// operation exists.
type Guest struct {
	ID       int64  `json:"guest_id"`
	EventID  string `json:"event_id"`
	OrderNum int    `json:"order_num"`
	Title    string `json:"title"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// GuestInfo is the roster entry shape embedded in EventInfo responses.
// swagger:model GuestInfo
type GuestInfo struct {
	Title    string `json:"title"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Info returns the client-facing view of the guest.
func (g *Guest) Info() GuestInfo {
	return GuestInfo{Title: g.Title, Name: g.Name, ImageURL: g.ImageURL}
}

// GuestRepository defines storage operations for event rosters.
type GuestRepository interface {
	// Append inserts the guest at the next roster position, setting
	// g.OrderNum to count(existing guests)+1 and g.ID to the new row ID.
	Append(ctx context.Context, g *Guest) error
	// ListByEventID returns the roster in position order.
	ListByEventID(ctx context.Context, eventID string) ([]*Guest, error)
}
