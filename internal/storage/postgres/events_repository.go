package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

const eventColumns = `id, event_name, description, date, location, capacity`

func (r *EventRepository) List(ctx context.Context) (items []events.Event, err error) {
	start := time.Now()
	defer func() { metrics.RecordQuery("list_events", start, err) }()

	rows, err := r.queryer().Query(ctx, `SELECT `+eventColumns+` FROM event ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	items = make([]events.Event, 0)
	for rows.Next() {
		var item events.Event
		if err = scanEvent(rows, &item); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) Create(ctx context.Context, params events.CreateParams) (item *events.Event, err error) {
	start := time.Now()
	defer func() { metrics.RecordQuery("create_event", start, err) }()

	row := r.queryer().QueryRow(ctx, `
INSERT INTO event (event_name, description, date, location, capacity)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+eventColumns,
		params.Name, params.Description, params.Date, params.Location, params.Capacity)

	item = &events.Event{}
	if err = scanEvent(row, item); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return item, nil
}

func (r *EventRepository) DecrementCapacity(ctx context.Context, id int64) (item *events.Event, err error) {
	start := time.Now()
	defer func() { metrics.RecordQuery("rsvp_event", start, err) }()

	row := r.queryer().QueryRow(ctx, `
UPDATE event
   SET capacity = capacity - 1
 WHERE id = $1
RETURNING `+eventColumns, id)

	item = &events.Event{}
	if err = scanEvent(row, item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("decrement capacity: %w", err)
	}
	return item, nil
}

func scanEvent(row pgx.Row, item *events.Event) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Date,
		&item.Location,
		&item.Capacity,
	)
}

func (r *EventRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}
