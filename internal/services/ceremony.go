package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"lampceremony/internal/domain"
)

const (
	eventIDLength      = 8
	hostPasswordLength = 9
)

// eventIDPattern matches the 8-digit event identifier format. The token
// resolver classifies purely by length; the digit check applies at
// creation time only.
var eventIDPattern = regexp.MustCompile(`^[0-9]{8}$`)

type ceremonyService struct {
	eventRepo      domain.EventRepository
	guestRepo      domain.GuestRepository
	mailer         domain.Mailer
	logger         *slog.Logger
	publicBaseURL  string
	contextTimeout time.Duration
}

func NewCeremonyService(eventRepo domain.EventRepository,
	guestRepo domain.GuestRepository,
	mailer domain.Mailer,
	logger *slog.Logger,
	publicBaseURL string,
	timeout time.Duration,
) domain.CeremonyService {
	return &ceremonyService{
		eventRepo:      eventRepo,
		guestRepo:      guestRepo,
		mailer:         mailer,
		logger:         logger,
		publicBaseURL:  publicBaseURL,
		contextTimeout: timeout,
	}
}

func (s *ceremonyService) CreateEvent(ctx context.Context, event *domain.Event, hostEmail string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !eventIDPattern.MatchString(event.ID) {
		return fmt.Errorf("%w: event ID must be exactly 8 digits", domain.ErrInvalidInput)
	}
	if len(event.HostPassword) != hostPasswordLength {
		return fmt.Errorf("%w: password must be exactly 9 characters", domain.ErrInvalidInput)
	}
	if event.TopHeader == "" || event.BottomHeader == "" || event.SoundURL == "" {
		return fmt.Errorf("%w: missing required event fields", domain.ErrInvalidInput)
	}

	// Fast-path probe; the insert's unique constraints remain the source
	// of truth under concurrent creation.
	exists, err := s.eventRepo.ExistsByPassword(ctx, event.HostPassword)
	if err != nil {
		return fmt.Errorf("check password: %w", err)
	}
	if exists {
		return domain.ErrPasswordInUse
	}

	event.CreatedAt = time.Now()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return err
	}

	if hostEmail != "" && s.mailer != nil {
		data := &domain.CeremonySummaryEmailData{
			Email:        hostEmail,
			EventID:      event.ID,
			HostPassword: event.HostPassword,
			JoinURL:      fmt.Sprintf("%s/?event=%s", s.publicBaseURL, event.ID),
			TopHeader:    event.TopHeader,
		}
		// Best effort: the event exists either way.
		if err := s.mailer.SendCeremonySummary(ctx, data); err != nil {
			s.logger.Warn("ceremony summary email failed", "event_id", event.ID, "err", err)
		}
	}
	return nil
}

func (s *ceremonyService) AddGuest(ctx context.Context, eventID, title, name, imageURL string) (*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if title == "" || name == "" || imageURL == "" {
		return nil, fmt.Errorf("%w: missing required guest fields", domain.ErrInvalidInput)
	}
	exists, err := s.eventRepo.ExistsByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	guest := &domain.Guest{
		EventID:  eventID,
		Title:    title,
		Name:     name,
		ImageURL: imageURL,
	}
	if err := s.guestRepo.Append(ctx, guest); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("append guest: %w", err)
	}
	return guest, nil
}

func (s *ceremonyService) Resolve(ctx context.Context, token string) (*domain.EventInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		event  *domain.Event
		isHost bool
		err    error
	)
	// Classification is by exact length of the untrimmed token: the two
	// classes are disjoint by construction.
	switch len(token) {
	case eventIDLength:
		event, err = s.eventRepo.GetByID(ctx, token)
	case hostPasswordLength:
		isHost = true
		event, err = s.eventRepo.GetByPassword(ctx, token)
	default:
		return nil, fmt.Errorf("%w: token must be either 8 or 9 characters", domain.ErrInvalidInput)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolve token: %w", err)
	}

	guests, err := s.guestRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	guestsInfo := make([]domain.GuestInfo, 0, len(guests))
	for _, g := range guests {
		guestsInfo = append(guestsInfo, g.Info())
	}

	return &domain.EventInfo{
		EventID:      event.ID,
		IsHost:       isHost,
		TopHeader:    event.TopHeader,
		BottomHeader: event.BottomHeader,
		SoundURL:     event.SoundURL,
		GuestsInfo:   guestsInfo,
		CurrentLight: event.CurrentLight,
		CurrentGuest: event.CurrentGuest,
		IsStart:      event.IsStart,
	}, nil
}

func (s *ceremonyService) Start(ctx context.Context, eventID string, isStart bool) (domain.CeremonyState, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	st, err := s.eventRepo.SetStart(ctx, eventID, isStart)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CeremonyState{}, domain.ErrNotFound
		}
		return domain.CeremonyState{}, fmt.Errorf("set start: %w", err)
	}
	return st, nil
}

func (s *ceremonyService) Advance(ctx context.Context, eventID string, action domain.Action) (domain.CeremonyState, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.UpdateStateAtomic(ctx, eventID, func(st domain.CeremonyState, totalGuests int) (domain.CeremonyState, error) {
		return domain.Transition(st, totalGuests, action)
	})
}

func (s *ceremonyService) State(ctx context.Context, eventID string) (domain.CeremonyState, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.GetState(ctx, eventID)
}

func (s *ceremonyService) EventExists(ctx context.Context, eventID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.ExistsByID(ctx, eventID)
}

func (s *ceremonyService) PasswordExists(ctx context.Context, password string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.ExistsByPassword(ctx, password)
}
