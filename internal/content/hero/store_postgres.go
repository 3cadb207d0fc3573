package hero

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

const heroColumns = "id, title, subtitle, description, image_url, cta_text, cta_link, order_index, is_active, created_at, updated_at"

func scanHero(row pgx.Row) (*Hero, error) {
	h := &Hero{}
	err := row.Scan(
		&h.ID, &h.Title, &h.Subtitle, &h.Description, &h.ImageURL,
		&h.CTAText, &h.CTALink, &h.OrderIndex, &h.IsActive,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (repository *PostgresRepository) ListActiveHeroes(context context.Context) ([]*Hero, error) {
	const query = `
		SELECT ` + heroColumns + `
		FROM hero_sections
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_heroes")
	}
	defer rows.Close()

	heroes := make([]*Hero, 0)
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_hero")
		}
		heroes = append(heroes, h)
	}

	return heroes, rows.Err()
}

func (repository *PostgresRepository) ListHeroes(context context.Context, limit, offset int) ([]*Hero, int, error) {
	const countQuery = `SELECT COUNT(*) FROM hero_sections`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_heroes")
	}

	const query = `
		SELECT ` + heroColumns + `
		FROM hero_sections
		ORDER BY order_index ASC, id ASC
		LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_heroes")
	}
	defer rows.Close()

	heroes := make([]*Hero, 0)
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_hero")
		}
		heroes = append(heroes, h)
	}

	return heroes, total, rows.Err()
}

func (repository *PostgresRepository) GetHero(context context.Context, id int64) (*Hero, error) {
	const query = `
		SELECT ` + heroColumns + `
		FROM hero_sections
		WHERE id = $1`

	h, err := scanHero(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_hero")
	}
	return h, nil
}

func (repository *PostgresRepository) CreateHero(context context.Context, h *Hero) error {
	const query = `
		INSERT INTO hero_sections (title, subtitle, description, image_url, cta_text, cta_link, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		h.Title, h.Subtitle, h.Description, h.ImageURL,
		h.CTAText, h.CTALink, h.OrderIndex, h.IsActive,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)

	return dberr.Wrap(err, "create_hero")
}

func (repository *PostgresRepository) UpdateHero(context context.Context, h *Hero) error {
	const query = `
		UPDATE hero_sections
		SET title = $2, subtitle = $3, description = $4, image_url = $5,
		    cta_text = $6, cta_link = $7, order_index = $8, is_active = $9,
		    updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query,
		h.ID, h.Title, h.Subtitle, h.Description, h.ImageURL,
		h.CTAText, h.CTALink, h.OrderIndex, h.IsActive,
	)
	if err != nil {
		return dberr.Wrap(err, "update_hero")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Hero section")
	}
	return nil
}

func (repository *PostgresRepository) DeleteHero(context context.Context, id int64) error {
	const query = `DELETE FROM hero_sections WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_hero")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Hero section")
	}
	return nil
}

func (repository *PostgresRepository) SetHeroActive(context context.Context, id int64, active bool) error {
	const query = `
		UPDATE hero_sections
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_hero_active")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Hero section")
	}
	return nil
}
