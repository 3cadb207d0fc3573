package team

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

const memberColumns = "id, name, position, bio, image_url, order_index, is_active, created_at, updated_at"

func scanMember(row pgx.Row) (*Member, error) {
	m := &Member{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Position, &m.Bio, &m.ImageURL,
		&m.OrderIndex, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (repository *PostgresRepository) ListActiveMembers(context context.Context) ([]*Member, error) {
	const query = `
		SELECT ` + memberColumns + `
		FROM team_members
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_members")
	}
	defer rows.Close()

	members := make([]*Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_member")
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (repository *PostgresRepository) ListMembers(context context.Context, limit, offset int) ([]*Member, int, error) {
	const countQuery = `SELECT COUNT(*) FROM team_members`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_members")
	}

	const query = `
		SELECT ` + memberColumns + `
		FROM team_members
		ORDER BY order_index ASC, id ASC
		LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_members")
	}
	defer rows.Close()

	members := make([]*Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_member")
		}
		members = append(members, m)
	}

	return members, total, rows.Err()
}

func (repository *PostgresRepository) GetMember(context context.Context, id int64) (*Member, error) {
	const query = `
		SELECT ` + memberColumns + `
		FROM team_members
		WHERE id = $1`

	m, err := scanMember(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_member")
	}
	return m, nil
}

func (repository *PostgresRepository) CreateMember(context context.Context, m *Member) error {
	const query = `
		INSERT INTO team_members (name, position, bio, image_url, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		m.Name, m.Position, m.Bio, m.ImageURL, m.OrderIndex, m.IsActive,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	return dberr.Wrap(err, "create_member")
}

func (repository *PostgresRepository) UpdateMember(context context.Context, m *Member) error {
	const query = `
		UPDATE team_members
		SET name = $2, position = $3, bio = $4, image_url = $5,
		    order_index = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query,
		m.ID, m.Name, m.Position, m.Bio, m.ImageURL, m.OrderIndex, m.IsActive,
	)
	if err != nil {
		return dberr.Wrap(err, "update_member")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Team member")
	}
	return nil
}

func (repository *PostgresRepository) DeleteMember(context context.Context, id int64) error {
	const query = `DELETE FROM team_members WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_member")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Team member")
	}
	return nil
}

func (repository *PostgresRepository) SetMemberActive(context context.Context, id int64, active bool) error {
	const query = `
		UPDATE team_members
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_member_active")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Team member")
	}
	return nil
}
