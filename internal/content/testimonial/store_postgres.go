package testimonial

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

const testimonialColumns = "id, name, company, quote, avatar_url, rating, order_index, is_active, created_at, updated_at"

func scanTestimonial(row pgx.Row) (*Testimonial, error) {
	t := &Testimonial{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Company, &t.Quote, &t.AvatarURL,
		&t.Rating, &t.OrderIndex, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (repository *PostgresRepository) ListActiveTestimonials(context context.Context) ([]*Testimonial, error) {
	const query = `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_testimonials")
	}
	defer rows.Close()

	testimonials := make([]*Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_testimonial")
		}
		testimonials = append(testimonials, t)
	}

	return testimonials, rows.Err()
}

func (repository *PostgresRepository) ListTestimonials(context context.Context, limit, offset int) ([]*Testimonial, int, error) {
	const countQuery = `SELECT COUNT(*) FROM testimonials`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_testimonials")
	}

	const query = `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		ORDER BY order_index ASC, id ASC
		LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_testimonials")
	}
	defer rows.Close()

	testimonials := make([]*Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_testimonial")
		}
		testimonials = append(testimonials, t)
	}

	return testimonials, total, rows.Err()
}

func (repository *PostgresRepository) GetTestimonial(context context.Context, id int64) (*Testimonial, error) {
	const query = `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE id = $1`

	t, err := scanTestimonial(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_testimonial")
	}
	return t, nil
}

func (repository *PostgresRepository) CreateTestimonial(context context.Context, t *Testimonial) error {
	const query = `
		INSERT INTO testimonials (name, company, quote, avatar_url, rating, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		t.Name, t.Company, t.Quote, t.AvatarURL, t.Rating, t.OrderIndex, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	return dberr.Wrap(err, "create_testimonial")
}

func (repository *PostgresRepository) UpdateTestimonial(context context.Context, t *Testimonial) error {
	const query = `
		UPDATE testimonials
		SET name = $2, company = $3, quote = $4, avatar_url = $5,
		    rating = $6, order_index = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query,
		t.ID, t.Name, t.Company, t.Quote, t.AvatarURL, t.Rating, t.OrderIndex, t.IsActive,
	)
	if err != nil {
		return dberr.Wrap(err, "update_testimonial")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Testimonial")
	}
	return nil
}

func (repository *PostgresRepository) DeleteTestimonial(context context.Context, id int64) error {
	const query = `DELETE FROM testimonials WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_testimonial")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Testimonial")
	}
	return nil
}

func (repository *PostgresRepository) SetTestimonialActive(context context.Context, id int64, active bool) error {
	const query = `
		UPDATE testimonials
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_testimonial_active")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Testimonial")
	}
	return nil
}
