package domain

import "context"

// CeremonySummaryEmailData holds the data for the email sent to a host
// after creating an event, so the credentials aren't lost when the
// creation page is closed.
type CeremonySummaryEmailData struct {
	Email        string
	EventID      string
	HostPassword string
	JoinURL      string
	TopHeader    string
}

// Mailer sends transactional email. Implementations live in
// internal/adapters/email.
type Mailer interface {
	SendCeremonySummary(ctx context.Context, data *CeremonySummaryEmailData) error
}
