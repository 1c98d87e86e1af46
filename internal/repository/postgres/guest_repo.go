package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"lampceremony/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{
		DB: db,
	}
}

func (r *guestRepository) Append(ctx context.Context, g *domain.Guest) error {
	// order_num is assigned in the insert itself. Appends are single-writer
	// during host setup; a concurrent append would trip the
	// (event_id, order_num) unique constraint instead of corrupting order.
	query := `
		INSERT INTO guests (event_id, order_num, title, name, image_url)
		SELECT $1, COUNT(*) + 1, $2, $3, $4 FROM guests WHERE event_id = $1
		RETURNING guest_id, order_num
	`
	err := r.DB.QueryRowContext(ctx, query, g.EventID, g.Title, g.Name, g.ImageURL).Scan(&g.ID, &g.OrderNum)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *guestRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	query := `
		SELECT guest_id, event_id, order_num, title, name, image_url
		FROM guests
		WHERE event_id = $1
		ORDER BY order_num
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.EventID, &g.OrderNum, &g.Title, &g.Name, &g.ImageURL); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
