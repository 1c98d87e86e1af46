package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"lampceremony/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (event_id, top_heading, bottom_heading, sound_url, host_password, current_light, current_guest, is_start, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, 0, FALSE, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, e.ID, e.TopHeader, e.BottomHeader, e.SoundURL, e.HostPassword, e.CreatedAt)
	if err != nil {
		return translateUniqueViolation(err)
	}
	e.CurrentLight = 0
	e.CurrentGuest = 0
	e.IsStart = false
	return nil
}

// translateUniqueViolation maps pq unique-violation errors to the domain
// conflict errors so callers never depend on constraint names.
func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "events_pkey":
			return domain.ErrEventIDInUse
		case "events_host_password_key":
			return domain.ErrPasswordInUse
		}
	}
	return err
}

const eventColumns = `event_id, top_heading, bottom_heading, sound_url, host_password, current_light, current_guest, is_start, created_at`

func (r *eventRepository) scanEvent(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.TopHeader, &e.BottomHeader, &e.SoundURL, &e.HostPassword,
		&e.CurrentLight, &e.CurrentGuest, &e.IsStart, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`
	return r.scanEvent(r.DB.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetByPassword(ctx context.Context, password string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE host_password = $1`
	return r.scanEvent(r.DB.QueryRowContext(ctx, query, password))
}

func (r *eventRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE event_id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *eventRepository) ExistsByPassword(ctx context.Context, password string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE host_password = $1)`, password).Scan(&exists)
	return exists, err
}

func (r *eventRepository) GetState(ctx context.Context, id string) (domain.CeremonyState, error) {
	var st domain.CeremonyState
	query := `SELECT current_light, current_guest, is_start FROM events WHERE event_id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&st.CurrentLight, &st.CurrentGuest, &st.IsStart)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CeremonyState{}, domain.ErrNotFound
		}
		return domain.CeremonyState{}, err
	}
	return st, nil
}

func (r *eventRepository) SetStart(ctx context.Context, id string, isStart bool) (domain.CeremonyState, error) {
	var st domain.CeremonyState
	query := `
		UPDATE events SET is_start = $2
		WHERE event_id = $1
		RETURNING current_light, current_guest, is_start
	`
	err := r.DB.QueryRowContext(ctx, query, id, isStart).Scan(&st.CurrentLight, &st.CurrentGuest, &st.IsStart)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CeremonyState{}, domain.ErrNotFound
		}
		return domain.CeremonyState{}, err
	}
	return st, nil
}

func (r *eventRepository) UpdateStateAtomic(ctx context.Context, id string, apply func(st domain.CeremonyState, totalGuests int) (domain.CeremonyState, error)) (domain.CeremonyState, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.CeremonyState{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var st domain.CeremonyState
	lockQuery := `SELECT current_light, current_guest, is_start FROM events WHERE event_id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&st.CurrentLight, &st.CurrentGuest, &st.IsStart)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CeremonyState{}, domain.ErrNotFound
		}
		return domain.CeremonyState{}, fmt.Errorf("lock event row: %w", err)
	}

	var totalGuests int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM guests WHERE event_id = $1`, id).Scan(&totalGuests)
	if err != nil {
		return domain.CeremonyState{}, fmt.Errorf("count guests: %w", err)
	}

	next, err := apply(st, totalGuests)
	if err != nil {
		// Returned unwrapped so callers can match boundary errors.
		return st, err
	}

	updateQuery := `UPDATE events SET current_light = $2, current_guest = $3, is_start = $4 WHERE event_id = $1`
	if _, err := tx.ExecContext(ctx, updateQuery, id, next.CurrentLight, next.CurrentGuest, next.IsStart); err != nil {
		return domain.CeremonyState{}, fmt.Errorf("write state: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.CeremonyState{}, fmt.Errorf("commit state: %w", err)
	}
	return next, nil
}
