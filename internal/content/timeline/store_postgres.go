package timeline

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

const entryColumns = "id, year, title, description, order_index, is_active, created_at, updated_at"

func scanEntry(row pgx.Row) (*Entry, error) {
	e := &Entry{}
	err := row.Scan(
		&e.ID, &e.Year, &e.Title, &e.Description,
		&e.OrderIndex, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (repository *PostgresRepository) ListActiveEntries(context context.Context) ([]*Entry, error) {
	const query = `
		SELECT ` + entryColumns + `
		FROM timeline_entries
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_entries")
	}
	defer rows.Close()

	entries := make([]*Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_entry")
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (repository *PostgresRepository) ListEntries(context context.Context, limit, offset int) ([]*Entry, int, error) {
	const countQuery = `SELECT COUNT(*) FROM timeline_entries`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_entries")
	}

	const query = `
		SELECT ` + entryColumns + `
		FROM timeline_entries
		ORDER BY order_index ASC, id ASC
		LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_entries")
	}
	defer rows.Close()

	entries := make([]*Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_entry")
		}
		entries = append(entries, e)
	}

	return entries, total, rows.Err()
}

func (repository *PostgresRepository) GetEntry(context context.Context, id int64) (*Entry, error) {
	const query = `
		SELECT ` + entryColumns + `
		FROM timeline_entries
		WHERE id = $1`

	e, err := scanEntry(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_entry")
	}
	return e, nil
}

func (repository *PostgresRepository) CreateEntry(context context.Context, e *Entry) error {
	const query = `
		INSERT INTO timeline_entries (year, title, description, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		e.Year, e.Title, e.Description, e.OrderIndex, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	return dberr.Wrap(err, "create_entry")
}

func (repository *PostgresRepository) UpdateEntry(context context.Context, e *Entry) error {
	const query = `
		UPDATE timeline_entries
		SET year = $2, title = $3, description = $4, order_index = $5,
		    is_active = $6, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query,
		e.ID, e.Year, e.Title, e.Description, e.OrderIndex, e.IsActive,
	)
	if err != nil {
		return dberr.Wrap(err, "update_entry")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Timeline entry")
	}
	return nil
}

func (repository *PostgresRepository) DeleteEntry(context context.Context, id int64) error {
	const query = `DELETE FROM timeline_entries WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_entry")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Timeline entry")
	}
	return nil
}

func (repository *PostgresRepository) SetEntryActive(context context.Context, id int64, active bool) error {
	const query = `
		UPDATE timeline_entries
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_entry_active")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Timeline entry")
	}
	return nil
}
