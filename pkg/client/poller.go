package client

import (
	"context"
	"sync"
	"time"

	"lampceremony/internal/domain"
)

// DefaultPollInterval is how often the poller fetches the state snapshot
// when no interval is configured.
const DefaultPollInterval = 2 * time.Second

// PollerHandlers receives per-field change notifications. Nil handlers
// are skipped. Handlers run on the poller's goroutine; keep them short.
type PollerHandlers struct {
	// OnLightChange fires when currentLight moves, in either direction.
	OnLightChange func(old, new int)
	// OnGuestChange fires when currentGuest moves, in either direction.
	OnGuestChange func(old, new int)
	// OnStartChange fires when the start flag flips.
	OnStartChange func(isStart bool)
	// OnError fires on failed poll ticks. Polling continues; transient
	// errors only delay reconciliation until the next tick.
	OnError func(err error)
}

// Poller drives a viewer's read-only reconciliation loop against the
// state endpoint. It keeps the last observed snapshot and invokes the
// handlers only for fields that actually changed, so a stale client
// converges to the server state regardless of how many actions it
// missed between ticks.
type Poller struct {
	client   *Client
	eventID  string
	interval time.Duration
	handlers PollerHandlers

	mu     sync.Mutex
	last   domain.CeremonyState
	seeded bool
}

// NewPoller returns a poller for the given event. A non-positive
// interval falls back to DefaultPollInterval.
func NewPoller(c *Client, eventID string, interval time.Duration, handlers PollerHandlers) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		client:   c,
		eventID:  eventID,
		interval: interval,
		handlers: handlers,
	}
}

// Seed primes the poller's observed snapshot without firing handlers.
// Call it with the state from the initial event-info fetch so the first
// tick does not report the bootstrap values as changes.
func (p *Poller) Seed(st domain.CeremonyState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = st
	p.seeded = true
}

// Last returns the most recently observed snapshot.
func (p *Poller) Last() domain.CeremonyState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Run polls until ctx is cancelled. If the poller was not seeded, the
// first successful fetch seeds it silently. Returns ctx.Err() on exit.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	st, err := p.client.State(ctx, p.eventID)
	if err != nil {
		if p.handlers.OnError != nil {
			p.handlers.OnError(err)
		}
		return
	}
	p.mu.Lock()
	if !p.seeded {
		p.last = st
		p.seeded = true
		p.mu.Unlock()
		return
	}
	prev := p.last
	p.last = st
	p.mu.Unlock()

	if st.CurrentLight != prev.CurrentLight && p.handlers.OnLightChange != nil {
		p.handlers.OnLightChange(prev.CurrentLight, st.CurrentLight)
	}
	if st.CurrentGuest != prev.CurrentGuest && p.handlers.OnGuestChange != nil {
		p.handlers.OnGuestChange(prev.CurrentGuest, st.CurrentGuest)
	}
	if st.IsStart != prev.IsStart && p.handlers.OnStartChange != nil {
		p.handlers.OnStartChange(st.IsStart)
	}
}
