package event

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/innohub/api/internal/platform/apperr"
	"github.com/innohub/api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = "id, title, description, event_date, location, image_url, order_index, is_active, created_at, updated_at"

func scanEvent(row pgx.Row) (*Event, error) {
	e := &Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location,
		&e.ImageURL, &e.OrderIndex, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListActiveEvents orders by event date first so the public site shows the
// nearest upcoming events; order_index breaks same-day ties.
func (repository *PostgresRepository) ListActiveEvents(context context.Context) ([]*Event, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE is_active = TRUE
		ORDER BY event_date ASC, order_index ASC, id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_events")
	}
	defer rows.Close()

	events := make([]*Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (repository *PostgresRepository) ListEvents(context context.Context, limit, offset int) ([]*Event, int, error) {
	const countQuery = `SELECT COUNT(*) FROM events`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_events")
	}

	const query = `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY event_date DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	events := make([]*Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	return events, total, rows.Err()
}

func (repository *PostgresRepository) GetEvent(context context.Context, id int64) (*Event, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1`

	e, err := scanEvent(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}
	return e, nil
}

func (repository *PostgresRepository) CreateEvent(context context.Context, e *Event) error {
	const query = `
		INSERT INTO events (title, description, event_date, location, image_url, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		e.Title, e.Description, e.EventDate, e.Location,
		e.ImageURL, e.OrderIndex, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	return dberr.Wrap(err, "create_event")
}

func (repository *PostgresRepository) UpdateEvent(context context.Context, e *Event) error {
	const query = `
		UPDATE events
		SET title = $2, description = $3, event_date = $4, location = $5,
		    image_url = $6, order_index = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query,
		e.ID, e.Title, e.Description, e.EventDate, e.Location,
		e.ImageURL, e.OrderIndex, e.IsActive,
	)
	if err != nil {
		return dberr.Wrap(err, "update_event")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Event")
	}
	return nil
}

func (repository *PostgresRepository) DeleteEvent(context context.Context, id int64) error {
	const query = `DELETE FROM events WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_event")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Event")
	}
	return nil
}

func (repository *PostgresRepository) SetEventActive(context context.Context, id int64, active bool) error {
	const query = `
		UPDATE events
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_event_active")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Event")
	}
	return nil
}
