// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/innohub/api/internal/platform/apperr"
	"github.com/innohub/api/internal/platform/sec"
	"github.com/innohub/api/internal/platform/validate"
	"github.com/innohub/api/pkg/pointer"
)

// # Contracts & Types

// TokenProvider defines the contract for generating bearer tokens.
type TokenProvider interface {
	// GenerateToken creates a signed JWT string for the given account.
	GenerateToken(accountID int64, email, role string) (string, error)
}

// Service implements the admin-account lifecycle use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, login, or
// the self-protection checks must be reviewed by the security team.
type Service struct {
	repository    Repository
	tokenProvider TokenProvider
	logger        *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(repository Repository, tokenProvider TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		repository:    repository,
		tokenProvider: tokenProvider,
		logger:        logger,
	}
}

// # Authentication Flow

// LoginSession represents a successfully established admin session.
type LoginSession struct {
	Token   string
	Account *Account
}

/*
Login validates credentials and issues a bearer token.

Description: Looks up the account, enforces the ban flag, performs a
constant-time password comparison, and signs a token carrying the account's
current id/email/role.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *LoginSession: Token plus public account projection
  - error: Unauthorized, AccountBanned, or internal failures
*/
func (service *Service) Login(context context.Context, email, password string) (*LoginSession, error) {
	account, err := service.repository.FindByEmail(context, email)

	// Unknown email gets the same message as a wrong password to prevent
	// account enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// A banned account holder does own real credentials, so the UI may say
	// "banned" rather than "wrong password".
	if account.IsBanned {
		return nil, apperr.AccountBanned()
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := service.tokenProvider.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("admin_service_token_generation_failed: %w", err)
	}

	service.logger.Info("admin_logged_in", slog.Int64("account_id", account.ID))

	return &LoginSession{Token: token, Account: account}, nil
}

/*
VerifyToken resolves already-verified claims back to a live account.

Description: This is the one operation besides the ban middleware where ban
status is re-validated against current data rather than trusted from the
token. The lookup goes by the email in the claims, not by cached data.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (signature/expiry already checked by middleware)

Returns:
  - *Account: Public projection of the live account
  - error: Unauthorized if the row vanished, AccountBanned, or storage failures
*/
func (service *Service) VerifyToken(context context.Context, claims *sec.AuthClaims) (*Account, error) {
	account, err := service.repository.FindByEmail(context, claims.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Account not found")
	}

	if account.IsBanned {
		return nil, apperr.AccountBanned()
	}

	return account, nil
}

/*
VerifyPassword re-confirms the current principal's password for a sensitive
client-side action. It mutates nothing.

Parameters:
  - context: context.Context
  - accountID: int64
  - password: string

Returns:
  - error: ValidationError (missing/invalid password), Unauthorized if the
    row vanished between auth and check, or storage failures
*/
func (service *Service) VerifyPassword(context context.Context, accountID int64, password string) error {
	if password == "" {
		return validate.RequiredError(FieldPassword, "is required")
	}

	// The principal authenticated moments ago; a vanished row means the
	// credential no longer refers to anything, so re-authentication is due.
	account, err := service.repository.FindByID(context, accountID)
	if err != nil {
		return apperr.Unauthorized("Account not found")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return validate.RequiredError(FieldPassword, "Invalid password")
	}

	return nil
}

// # Self-Service Operations

/*
ChangePassword rotates the current principal's password.

Description: Requires proof of the current password. The original password
becomes immediately invalid for future logins; already-issued tokens are
unaffected (stateless design).

Parameters:
  - context: context.Context
  - accountID: int64
  - currentPassword: string
  - newPassword: string

Returns:
  - error: ValidationError (weak/wrong password) or storage failures
*/
func (service *Service) ChangePassword(context context.Context, accountID int64, currentPassword, newPassword string) error {
	validator := &validate.Validator{}
	validator.Required(FieldNewPassword, newPassword).
		MinLen(FieldNewPassword, newPassword, MinPasswordLength)
	if err := validator.Err(); err != nil {
		return err
	}

	account, err := service.repository.FindByID(context, accountID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, account.PasswordHash) {
		return validate.RequiredError(FieldCurrentPassword, "Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("admin_service_hash_failed: %w", err)
	}

	if err := service.repository.UpdatePassword(context, accountID, hashedPassword); err != nil {
		return err
	}

	service.logger.Info("admin_password_changed", slog.Int64("account_id", accountID))
	return nil
}

// ProfileUpdate carries the partial-update fields for profile operations.
// Nil fields are left unchanged (COALESCE-style semantics).
type ProfileUpdate struct {
	Name  *string
	Email *string
}

/*
UpdateOwnProfile applies a partial update to the current principal's profile.

Parameters:
  - context: context.Context
  - accountID: int64
  - input: ProfileUpdate

Returns:
  - *Account: Updated public projection
  - error: EmailTaken, ValidationError, or storage failures
*/
func (service *Service) UpdateOwnProfile(context context.Context, accountID int64, input ProfileUpdate) (*Account, error) {
	account, err := service.repository.FindByID(context, accountID)
	if err != nil {
		return nil, err
	}

	newName := pointer.Fallback(input.Name, account.Name)
	newEmail := pointer.Fallback(input.Email, account.Email)

	validator := &validate.Validator{}
	validator.Required(FieldName, newName).MaxLen(FieldName, newName, MaxNameLength)
	validator.Required(FieldEmail, newEmail).Email(FieldEmail, newEmail).MaxLen(FieldEmail, newEmail, MaxEmailLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if newEmail != account.Email {
		if err := service.ensureEmailFree(context, newEmail, accountID); err != nil {
			return nil, err
		}
	}

	if err := service.repository.UpdateProfile(context, accountID, newName, newEmail); err != nil {
		return nil, err
	}

	account.Name = newName
	account.Email = newEmail

	service.logger.Info("admin_profile_updated", slog.Int64("account_id", accountID))
	return account, nil
}

// # Super-Admin Operations

/*
CreateAdmin enrolls a new content-editor account.

Description: The creation path always assigns role 'admin'; super_admin
accounts are provisioned only by the out-of-band bootstrap step.

Parameters:
  - context: context.Context
  - name, email, password: string

Returns:
  - *Account: Public projection of the created account
  - error: ValidationError, EmailTaken, or storage failures
*/
func (service *Service) CreateAdmin(context context.Context, name, email, password string) (*Account, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength).
		Required(FieldEmail, email).Email(FieldEmail, email).
		Required(FieldPassword, password).MinLen(FieldPassword, password, MinPasswordLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureEmailFree(context, email, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("admin_service_hash_failed: %w", err)
	}

	account := &Account{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleAdmin,
		IsBanned:     false,
	}

	if err := service.repository.Create(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("admin_created", slog.Int64("account_id", account.ID))
	return account, nil
}

/*
UpdateAdmin applies a partial update to another admin's profile.

Description: super_admin rows can never be modified through this path, which
also transitively protects the acting super_admin from editing itself. The
final UPDATE is scoped to role = 'admin'; a race that demotes the target to
zero matched rows is reported as NotFound.

Parameters:
  - context: context.Context
  - targetID: int64
  - input: ProfileUpdate

Returns:
  - *Account: Updated public projection
  - error: NotFound, Forbidden, EmailTaken, or storage failures
*/
func (service *Service) UpdateAdmin(context context.Context, targetID int64, input ProfileUpdate) (*Account, error) {
	target, err := service.repository.FindByID(context, targetID)
	if err != nil {
		return nil, err
	}

	if target.Role.IsSuperAdmin() {
		return nil, apperr.Forbidden("Cannot modify a super admin account")
	}

	newName := pointer.Fallback(input.Name, target.Name)
	newEmail := pointer.Fallback(input.Email, target.Email)

	validator := &validate.Validator{}
	validator.Required(FieldName, newName).MaxLen(FieldName, newName, MaxNameLength)
	validator.Required(FieldEmail, newEmail).Email(FieldEmail, newEmail)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if newEmail != target.Email {
		if err := service.ensureEmailFree(context, newEmail, targetID); err != nil {
			return nil, err
		}
	}

	if err := service.repository.UpdateAdminScoped(context, targetID, newName, newEmail); err != nil {
		return nil, err
	}

	target.Name = newName
	target.Email = newEmail

	service.logger.Info("admin_updated", slog.Int64("account_id", targetID))
	return target, nil
}

/*
DeleteAdmin permanently removes a non-super-admin, non-self account.

Parameters:
  - context: context.Context
  - actorID: int64 (the acting super_admin)
  - targetID: int64

Returns:
  - error: NotFound, Forbidden, SelfProtection, or storage failures
*/
func (service *Service) DeleteAdmin(context context.Context, actorID, targetID int64) error {
	target, err := service.repository.FindByID(context, targetID)
	if err != nil {
		return err
	}

	if target.Role.IsSuperAdmin() {
		return apperr.Forbidden("Cannot delete a super admin account")
	}

	// Guarded even though a super_admin actor should never match an admin
	// row under the fixed-role model.
	if target.ID == actorID {
		return apperr.SelfProtection("You cannot delete your own account")
	}

	if err := service.repository.DeleteAdminScoped(context, targetID); err != nil {
		return err
	}

	service.logger.Warn("admin_deleted", slog.Int64("account_id", targetID))
	return nil
}

/*
BanAdmin sets the ban flag on a non-super-admin, non-self account.

Already-issued tokens for the banned account keep passing signature checks;
denial happens on routes that re-check the store.

Parameters:
  - context: context.Context
  - actorID, targetID: int64

Returns:
  - *Account: Updated public projection
  - error: NotFound, Forbidden, SelfProtection, or storage failures
*/
func (service *Service) BanAdmin(context context.Context, actorID, targetID int64) (*Account, error) {
	return service.setBanned(context, actorID, targetID, true)
}

/*
UnbanAdmin clears the ban flag on a non-super-admin, non-self account.

Parameters:
  - context: context.Context
  - actorID, targetID: int64

Returns:
  - *Account: Updated public projection
  - error: NotFound, Forbidden, SelfProtection, or storage failures
*/
func (service *Service) UnbanAdmin(context context.Context, actorID, targetID int64) (*Account, error) {
	return service.setBanned(context, actorID, targetID, false)
}

func (service *Service) setBanned(context context.Context, actorID, targetID int64, banned bool) (*Account, error) {
	target, err := service.repository.FindByID(context, targetID)
	if err != nil {
		return nil, err
	}

	if target.Role.IsSuperAdmin() {
		return nil, apperr.Forbidden("Cannot ban a super admin account")
	}

	if target.ID == actorID {
		return nil, apperr.SelfProtection("You cannot ban your own account")
	}

	if err := service.repository.SetBannedScoped(context, targetID, banned); err != nil {
		return nil, err
	}

	target.IsBanned = banned

	service.logger.Warn("admin_ban_flag_changed",
		slog.Int64("account_id", targetID),
		slog.Bool("banned", banned),
	)
	return target, nil
}

/*
ListAdmins returns every account, super_admin rows first, then newest first
within each role.

Parameters:
  - context: context.Context

Returns:
  - []*Account: Ordered public projections
  - error: Retrieval failures
*/
func (service *Service) ListAdmins(context context.Context) ([]*Account, error) {
	return service.repository.ListAccounts(context)
}

// # Bootstrap

/*
Bootstrap creates the first super_admin account if no account with the given
email exists. Idempotent by email — safe to run on every startup.

Parameters:
  - context: context.Context
  - name, email, password: string

Returns:
  - error: Hashing or storage failures
*/
func (service *Service) Bootstrap(context context.Context, name, email, password string) error {
	if _, err := service.repository.FindByEmail(context, email); err == nil {
		service.logger.Info("bootstrap_super_admin_exists", slog.String("email", email))
		return nil
	}

	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return fmt.Errorf("admin_service_bootstrap_hash_failed: %w", err)
	}

	account := &Account{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleSuperAdmin,
		IsBanned:     false,
	}

	if err := service.repository.Create(context, account); err != nil {
		return fmt.Errorf("admin_service_bootstrap_failed: %w", err)
	}

	service.logger.Info("bootstrap_super_admin_created", slog.Int64("account_id", account.ID))
	return nil
}

// ensureEmailFree fails with EmailTaken when another account already uses the
// email. excludeID skips the account being updated (0 excludes nothing).
//
// This is a check-then-write pre-check; the UNIQUE index on users.email
// closes the narrow race and dberr maps the violation to the same outcome.
func (service *Service) ensureEmailFree(context context.Context, email string, excludeID int64) error {
	existing, err := service.repository.FindByEmail(context, email)
	if err == nil && existing.ID != excludeID {
		return apperr.EmailTaken()
	}
	return nil
}
