// Package postgres implements the storage layer on PostgreSQL via database/sql.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// schema is applied at startup. The UNIQUE constraints on events.event_id
// (primary key) and events.host_password are the source of truth for
// creation conflicts; the /check-* probes are only a fast path.
const schema = `
CREATE TABLE IF NOT EXISTS events (
	event_id       TEXT PRIMARY KEY,
	top_heading    TEXT NOT NULL,
	bottom_heading TEXT NOT NULL,
	sound_url      TEXT NOT NULL,
	host_password  TEXT NOT NULL UNIQUE,
	current_light  INTEGER NOT NULL DEFAULT 0,
	current_guest  INTEGER NOT NULL DEFAULT 0,
	is_start       BOOLEAN NOT NULL DEFAULT FALSE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS guests (
	guest_id  BIGSERIAL PRIMARY KEY,
	event_id  TEXT NOT NULL REFERENCES events (event_id),
	order_num INTEGER NOT NULL,
	title     TEXT NOT NULL,
	name      TEXT NOT NULL,
	image_url TEXT NOT NULL,
	UNIQUE (event_id, order_num)
);
`

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// Open connects to PostgreSQL, pings with retries to accommodate
// containers still starting up, and bootstraps the schema.
func Open(ctx context.Context, dbURL string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		logger.Warn("database ping failed", "attempt", attempt, "err", err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return db, nil
}
