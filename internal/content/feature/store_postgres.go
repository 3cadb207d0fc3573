package feature

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

const featureColumns = "id, title, description, icon, order_index, is_active, created_at, updated_at"

func scanFeature(row pgx.Row) (*Feature, error) {
	f := &Feature{}
	err := row.Scan(
		&f.ID, &f.Title, &f.Description, &f.Icon,
		&f.OrderIndex, &f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (repository *PostgresRepository) ListActiveFeatures(context context.Context) ([]*Feature, error) {
	const query = `
		SELECT ` + featureColumns + `
		FROM features
		WHERE is_active = TRUE
		ORDER BY order_index ASC, id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_features")
	}
	defer rows.Close()

	features := make([]*Feature, 0)
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_feature")
		}
		features = append(features, f)
	}

	return features, rows.Err()
}

func (repository *PostgresRepository) ListFeatures(context context.Context, limit, offset int) ([]*Feature, int, error) {
	const countQuery = `SELECT COUNT(*) FROM features`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_features")
	}

	const query = `
		SELECT ` + featureColumns + `
		FROM features
		ORDER BY order_index ASC, id ASC
		LIMIT $1 OFFSET $2`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_features")
	}
	defer rows.Close()

	features := make([]*Feature, 0)
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_feature")
		}
		features = append(features, f)
	}

	return features, total, rows.Err()
}

func (repository *PostgresRepository) GetFeature(context context.Context, id int64) (*Feature, error) {
	const query = `
		SELECT ` + featureColumns + `
		FROM features
		WHERE id = $1`

	f, err := scanFeature(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_feature")
	}
	return f, nil
}

func (repository *PostgresRepository) CreateFeature(context context.Context, f *Feature) error {
	const query = `
		INSERT INTO features (title, description, icon, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		f.Title, f.Description, f.Icon, f.OrderIndex, f.IsActive,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)

	return dberr.Wrap(err, "create_feature")
}

func (repository *PostgresRepository) UpdateFeature(context context.Context, f *Feature) error {
	const query = `
		UPDATE features
		SET title = $2, description = $3, icon = $4, order_index = $5,
		    is_active = $6, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query,
		f.ID, f.Title, f.Description, f.Icon, f.OrderIndex, f.IsActive,
	)
	if err != nil {
		return dberr.Wrap(err, "update_feature")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Feature")
	}
	return nil
}

func (repository *PostgresRepository) DeleteFeature(context context.Context, id int64) error {
	const query = `DELETE FROM features WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_feature")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Feature")
	}
	return nil
}

func (repository *PostgresRepository) SetFeatureActive(context context.Context, id int64, active bool) error {
	const query = `
		UPDATE features
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_feature_active")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Feature")
	}
	return nil
}
