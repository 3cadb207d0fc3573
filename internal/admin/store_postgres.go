// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

// PostgreSQL implementation of the admin [Repository].
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
// [apperr.AppError] types via dberr to avoid leaking storage implementation
// details.
package admin

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/innohub/api/internal/platform/apperr"
	"github.com/innohub/api/internal/platform/dberr"
)

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const accountColumns = "id, name, email, password, role, is_banned, created_at"

func (repository *PostgresRepository) scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.IsBanned,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, dberr.Wrap(err, "scan_account")
	}
	return account, nil
}

/*
FindByID retrieves an account by its surrogate primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM users
		WHERE id = $1`

	return repository.scanAccount(repository.pool.QueryRow(context, query, id))
}

/*
FindByEmail retrieves an account by its unique email address.

Emails are compared case-sensitively as stored.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM users
		WHERE email = $1`

	return repository.scanAccount(repository.pool.QueryRow(context, query, email))
}

/*
Create persists a new account row and fills the generated ID and CreatedAt.

Parameters:
  - context: context.Context
  - account: *Account (role and ban flag must be pre-set by the service)

Returns:
  - error: EMAIL_TAKEN on unique violation, or persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, account *Account) error {
	const query = `
		INSERT INTO users (name, email, password, role, is_banned, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`

	err := repository.pool.QueryRow(context, query,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.IsBanned,
	).Scan(&account.ID, &account.CreatedAt)

	return dberr.Wrap(err, "create_account")
}

/*
UpdateProfile replaces the name and email of any account (self-service path).

Parameters:
  - context: context.Context
  - id: int64
  - name, email: resolved final values (partial-update semantics are applied
    by the service before this call)

Returns:
  - error: EMAIL_TAKEN on unique violation, apperr.NotFound, or persistence failures
*/
func (repository *PostgresRepository) UpdateProfile(context context.Context, id int64, name, email string) error {
	const query = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1`

	cmd, err := repository.pool.Exec(context, query, id, name, email)
	if err != nil {
		return dberr.Wrap(err, "update_profile")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Account")
	}
	return nil
}

/*
UpdatePassword replaces only the password digest for a specific account.

Parameters:
  - context: context.Context
  - id: int64
  - newHash: string

Returns:
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) UpdatePassword(context context.Context, id int64, newHash string) error {
	const query = `
		UPDATE users
		SET password = $2
		WHERE id = $1`

	cmd, err := repository.pool.Exec(context, query, id, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_password")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Account")
	}
	return nil
}

/*
UpdateAdminScoped replaces name and email, restricted to role = 'admin'.

The role restriction lives in the WHERE clause as a query-level authorization
guard: a row that stopped being an admin between check and write matches zero
rows and surfaces as NotFound.

Parameters:
  - context: context.Context
  - id: int64
  - name, email: resolved final values

Returns:
  - error: apperr.NotFound, EMAIL_TAKEN, or persistence failures
*/
func (repository *PostgresRepository) UpdateAdminScoped(context context.Context, id int64, name, email string) error {
	const query = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1 AND role = 'admin'`

	cmd, err := repository.pool.Exec(context, query, id, name, email)
	if err != nil {
		return dberr.Wrap(err, "update_admin")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Admin")
	}
	return nil
}

/*
DeleteAdminScoped removes an account, restricted to role = 'admin'.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresRepository) DeleteAdminScoped(context context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1 AND role = 'admin'`

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_admin")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Admin")
	}
	return nil
}

/*
SetBannedScoped sets or clears the ban flag, restricted to role = 'admin'.

Parameters:
  - context: context.Context
  - id: int64
  - banned: bool

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresRepository) SetBannedScoped(context context.Context, id int64, banned bool) error {
	const query = `
		UPDATE users
		SET is_banned = $2
		WHERE id = $1 AND role = 'admin'`

	cmd, err := repository.pool.Exec(context, query, id, banned)
	if err != nil {
		return dberr.Wrap(err, "set_banned")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Admin")
	}
	return nil
}

/*
ListAccounts returns every account, super_admin rows first, then newest first
within each role.

Parameters:
  - context: context.Context

Returns:
  - []*Account: Ordered accounts
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListAccounts(context context.Context) ([]*Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM users
		ORDER BY (role = 'super_admin') DESC, created_at DESC`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_accounts")
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		account := &Account{}
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Email,
			&account.PasswordHash,
			&account.Role,
			&account.IsBanned,
			&account.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_account")
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

/*
BanStatus reports the live ban flag for an account.

Absence is reported via the exists flag, never as an error, so the caller
decides how to treat deleted accounts.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - bool: isBanned
  - bool: exists
  - error: Retrieval failures only
*/
func (repository *PostgresRepository) BanStatus(context context.Context, id int64) (bool, bool, error) {
	const query = `SELECT is_banned FROM users WHERE id = $1`

	var isBanned bool
	err := repository.pool.QueryRow(context, query, id).Scan(&isBanned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, dberr.Wrap(err, "ban_status")
	}

	return isBanned, true, nil
}
