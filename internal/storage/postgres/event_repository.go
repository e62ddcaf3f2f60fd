package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ronak21-coder/AI-CHATBOT-COLLEGE-PBL/internal/domain"
)

// EventRepository reads the event dataset from Postgres. The chatbot only
// loads it once at startup; insertion exists for seeding and tests.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// ListEvents returns every event in insertion order. Insertion order is the
// tie-break order for equal match scores, so it must be stable.
func (r *EventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT title, description, "date", "time", location, organizer, fee, registration_link, tags
FROM events
ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		if err := rows.Scan(
			&ev.Title, &ev.Description, &ev.Date, &ev.Time,
			&ev.Location, &ev.Organizer, &ev.Fee, &ev.RegistrationLink, &ev.Tags,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.ErrNoEvents
	}
	return events, nil
}

// InsertEvent appends one event to the dataset.
func (r *EventRepository) InsertEvent(ctx context.Context, ev domain.Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}

	const query = `
INSERT INTO events (title, description, "date", "time", location, organizer, fee, registration_link, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	tags := ev.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := r.pool.Exec(ctx, query,
		ev.Title, ev.Description, ev.Date, ev.Time,
		ev.Location, ev.Organizer, ev.Fee, ev.RegistrationLink, tags,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
