// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package admin

import "context"

// # Account Data Access

// Repository defines the data access contract for admin accounts.
//
// The *Scoped mutators carry the role restriction in the statement itself
// (WHERE role = 'admin'), so a concurrent role discrepancy surfaces as
// zero rows affected rather than a privileged write.
type Repository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*Account, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		Create persists a brand-new account, filling ID and CreatedAt.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: Constraint violations or persistence failures
	*/
	Create(context context.Context, account *Account) error

	/*
		UpdateProfile replaces the name and email of any account.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - name: string
		  - email: string

		Returns:
		  - error: Constraint violations or persistence failures
	*/
	UpdateProfile(context context.Context, id int64, name, email string) error

	/*
		UpdatePassword replaces only the account's password digest.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(context context.Context, id int64, newHash string) error

	/*
		UpdateAdminScoped replaces name and email of an account, restricted to
		rows whose role is 'admin'. Zero matched rows yield apperr.NotFound.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - name: string
		  - email: string

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	UpdateAdminScoped(context context.Context, id int64, name, email string) error

	/*
		DeleteAdminScoped removes an account, restricted to rows whose role is
		'admin'. Zero matched rows yield apperr.NotFound.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	DeleteAdminScoped(context context.Context, id int64) error

	/*
		SetBannedScoped sets or clears the ban flag, restricted to rows whose
		role is 'admin'. Zero matched rows yield apperr.NotFound.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - banned: bool

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	SetBannedScoped(context context.Context, id int64, banned bool) error

	/*
		ListAccounts returns every account, super_admin rows first, then by
		creation time descending within each role. Digests stay server-side
		but are loaded so callers can reason about full rows in tests.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Account: Ordered accounts
		  - error: Retrieval failures
	*/
	ListAccounts(context context.Context) ([]*Account, error)

	/*
		BanStatus reports the live ban flag for an account.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - bool: isBanned
		  - bool: exists (false when the row is gone)
		  - error: Retrieval failures only — absence is not an error
	*/
	BanStatus(context context.Context, id int64) (bool, bool, error)
}
