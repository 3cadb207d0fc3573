// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package admin_test

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innohub/api/internal/admin"
	"github.com/innohub/api/internal/platform/apperr"
	"github.com/innohub/api/internal/platform/sec"
)

// # Test Doubles

// fakeRepository is an in-memory Repository with the same role-scoping
// semantics as the PostgreSQL implementation.
type fakeRepository struct {
	nextID   int64
	accounts map[int64]*admin.Account
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, accounts: map[int64]*admin.Account{}}
}

func (r *fakeRepository) FindByID(_ context.Context, id int64) (*admin.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	clone := *account
	return &clone, nil
}

func (r *fakeRepository) FindByEmail(_ context.Context, email string) (*admin.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			clone := *account
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (r *fakeRepository) Create(_ context.Context, account *admin.Account) error {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return apperr.EmailTaken()
		}
	}
	account.ID = r.nextID
	account.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	r.nextID++
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeRepository) UpdateProfile(_ context.Context, id int64, name, email string) error {
	account, ok := r.accounts[id]
	if !ok {
		return apperr.NotFound("Account")
	}
	account.Name = name
	account.Email = email
	return nil
}

func (r *fakeRepository) UpdatePassword(_ context.Context, id int64, newHash string) error {
	account, ok := r.accounts[id]
	if !ok {
		return apperr.NotFound("Account")
	}
	account.PasswordHash = newHash
	return nil
}

func (r *fakeRepository) UpdateAdminScoped(_ context.Context, id int64, name, email string) error {
	account, ok := r.accounts[id]
	if !ok || account.Role != sec.RoleAdmin {
		return apperr.NotFound("Admin")
	}
	account.Name = name
	account.Email = email
	return nil
}

func (r *fakeRepository) DeleteAdminScoped(_ context.Context, id int64) error {
	account, ok := r.accounts[id]
	if !ok || account.Role != sec.RoleAdmin {
		return apperr.NotFound("Admin")
	}
	delete(r.accounts, id)
	return nil
}

func (r *fakeRepository) SetBannedScoped(_ context.Context, id int64, banned bool) error {
	account, ok := r.accounts[id]
	if !ok || account.Role != sec.RoleAdmin {
		return apperr.NotFound("Admin")
	}
	account.IsBanned = banned
	return nil
}

func (r *fakeRepository) ListAccounts(_ context.Context) ([]*admin.Account, error) {
	accounts := make([]*admin.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		clone := *account
		accounts = append(accounts, &clone)
	}
	sort.Slice(accounts, func(i, j int) bool {
		iSuper := accounts[i].Role.IsSuperAdmin()
		jSuper := accounts[j].Role.IsSuperAdmin()
		if iSuper != jSuper {
			return iSuper
		}
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})
	return accounts, nil
}

func (r *fakeRepository) BanStatus(_ context.Context, id int64) (bool, bool, error) {
	account, ok := r.accounts[id]
	if !ok {
		return false, false, nil
	}
	return account.IsBanned, true, nil
}

// stubTokens issues predictable token strings.
type stubTokens struct{}

func (stubTokens) GenerateToken(accountID int64, email, _ string) (string, error) {
	return fmt.Sprintf("token-%d-%s", accountID, email), nil
}

// # Fixtures

func testService(t *testing.T) (*admin.Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	logger := slog.New(slog.DiscardHandler)
	return admin.NewService(repo, stubTokens{}, logger), repo
}

func seedAccount(t *testing.T, repo *fakeRepository, name, email, password string, role sec.Role) *admin.Account {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	account := &admin.Account{Name: name, Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func assertCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, wantCode, ae.Code)
}

// # Authentication

/*
TestLogin covers the credential matrix: correct credentials issue a token,
while unknown emails and wrong passwords fail with an identical message so
callers cannot enumerate accounts. Banned accounts get an explicit status.
*/
func TestLogin(t *testing.T) {
	service, repo := testService(t)
	seedAccount(t, repo, "Alice", "alice@innohub.io", "secret123", sec.RoleAdmin)

	banned := seedAccount(t, repo, "Mallory", "mallory@innohub.io", "secret123", sec.RoleAdmin)
	repo.accounts[banned.ID].IsBanned = true

	t.Run("success", func(t *testing.T) {
		session, err := service.Login(context.Background(), "alice@innohub.io", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "alice@innohub.io", session.Account.Email)
	})

	t.Run("enumeration_resistance", func(t *testing.T) {
		_, unknownErr := service.Login(context.Background(), "ghost@innohub.io", "secret123")
		_, wrongPassErr := service.Login(context.Background(), "alice@innohub.io", "not-it")

		assertCode(t, unknownErr, "UNAUTHORIZED")
		assertCode(t, wrongPassErr, "UNAUTHORIZED")
		assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	})

	t.Run("banned_account", func(t *testing.T) {
		_, err := service.Login(context.Background(), "mallory@innohub.io", "secret123")
		assertCode(t, err, "ACCOUNT_BANNED")
	})
}

/*
TestVerifyToken checks the live re-validation: a token that passed signature
checks is still rejected when the backing account is banned or gone.
*/
func TestVerifyToken(t *testing.T) {
	service, repo := testService(t)
	account := seedAccount(t, repo, "Alice", "alice@innohub.io", "secret123", sec.RoleAdmin)

	claims := &sec.AuthClaims{AccountID: account.ID, Email: account.Email, Role: "admin"}

	t.Run("live_account", func(t *testing.T) {
		got, err := service.VerifyToken(context.Background(), claims)
		require.NoError(t, err)
		assert.Equal(t, account.Email, got.Email)
	})

	t.Run("banned_after_issuance", func(t *testing.T) {
		repo.accounts[account.ID].IsBanned = true
		_, err := service.VerifyToken(context.Background(), claims)
		assertCode(t, err, "ACCOUNT_BANNED")
		repo.accounts[account.ID].IsBanned = false
	})

	t.Run("deleted_account", func(t *testing.T) {
		_, err := service.VerifyToken(context.Background(), &sec.AuthClaims{Email: "gone@innohub.io"})
		assertCode(t, err, "UNAUTHORIZED")
	})
}

/*
TestVerifyPassword checks the sensitive-action confirmation endpoint.
*/
func TestVerifyPassword(t *testing.T) {
	service, repo := testService(t)
	account := seedAccount(t, repo, "Alice", "alice@innohub.io", "secret123", sec.RoleAdmin)

	assert.NoError(t, service.VerifyPassword(context.Background(), account.ID, "secret123"))
	assertCode(t, service.VerifyPassword(context.Background(), account.ID, ""), "VALIDATION_ERROR")
	assertCode(t, service.VerifyPassword(context.Background(), account.ID, "wrong"), "VALIDATION_ERROR")
	assertCode(t, service.VerifyPassword(context.Background(), 999, "secret123"), "UNAUTHORIZED")
}

// # Self-Service

/*
TestChangePassword verifies the full rotation round trip: the old password
stops working for login and the new one takes over.
*/
func TestChangePassword(t *testing.T) {
	service, repo := testService(t)
	account := seedAccount(t, repo, "Alice", "alice@innohub.io", "oldpass", sec.RoleAdmin)

	t.Run("short_new_password", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), account.ID, "oldpass", "tiny")
		assertCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("wrong_current_password", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), account.ID, "not-it", "newpass123")
		assertCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("round_trip", func(t *testing.T) {
		require.NoError(t, service.ChangePassword(context.Background(), account.ID, "oldpass", "newpass123"))

		_, err := service.Login(context.Background(), "alice@innohub.io", "oldpass")
		assertCode(t, err, "UNAUTHORIZED")

		_, err = service.Login(context.Background(), "alice@innohub.io", "newpass123")
		assert.NoError(t, err)
	})
}

/*
TestUpdateOwnProfile checks partial updates and email collision handling.
*/
func TestUpdateOwnProfile(t *testing.T) {
	service, repo := testService(t)
	account := seedAccount(t, repo, "Alice", "alice@innohub.io", "secret123", sec.RoleAdmin)
	seedAccount(t, repo, "Bob", "bob@innohub.io", "secret123", sec.RoleAdmin)

	t.Run("partial_name_only", func(t *testing.T) {
		newName := "Alice Cooper"
		updated, err := service.UpdateOwnProfile(context.Background(), account.ID, admin.ProfileUpdate{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, "Alice Cooper", updated.Name)
		assert.Equal(t, "alice@innohub.io", updated.Email)
	})

	t.Run("email_collision", func(t *testing.T) {
		taken := "bob@innohub.io"
		_, err := service.UpdateOwnProfile(context.Background(), account.ID, admin.ProfileUpdate{Email: &taken})
		assertCode(t, err, "EMAIL_TAKEN")
	})

	t.Run("own_email_is_not_a_collision", func(t *testing.T) {
		same := "alice@innohub.io"
		_, err := service.UpdateOwnProfile(context.Background(), account.ID, admin.ProfileUpdate{Email: &same})
		assert.NoError(t, err)
	})
}

// # Account Management

/*
TestCreateAdmin verifies validation, uniqueness, and the fixed-role rule:
the creation path can only ever mint plain admin accounts.
*/
func TestCreateAdmin(t *testing.T) {
	service, repo := testService(t)
	seedAccount(t, repo, "Root", "root@innohub.io", "secret123", sec.RoleSuperAdmin)

	t.Run("success_role_is_fixed", func(t *testing.T) {
		account, err := service.CreateAdmin(context.Background(), "Bob", "bob@innohub.io", "secret123")
		require.NoError(t, err)
		assert.Equal(t, sec.RoleAdmin, account.Role)
		assert.False(t, account.IsBanned)
		assert.NotZero(t, account.ID)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		_, err := service.CreateAdmin(context.Background(), "Imposter", "bob@innohub.io", "secret123")
		assertCode(t, err, "EMAIL_TAKEN")
	})

	t.Run("validation", func(t *testing.T) {
		_, err := service.CreateAdmin(context.Background(), "", "not-an-email", "tiny")
		assertCode(t, err, "VALIDATION_ERROR")

		ae := apperr.As(err)
		assert.Len(t, ae.Details, 3)
	})
}

/*
TestAdminMutationGuards covers the target-protection matrix shared by
update, delete, ban, and unban: missing targets are 404, super-admin
targets are 403, and self-targeting is 400 with no state change.
*/
func TestAdminMutationGuards(t *testing.T) {
	service, repo := testService(t)
	root := seedAccount(t, repo, "Root", "root@innohub.io", "secret123", sec.RoleSuperAdmin)
	worker := seedAccount(t, repo, "Worker", "worker@innohub.io", "secret123", sec.RoleAdmin)

	t.Run("missing_target", func(t *testing.T) {
		assertCode(t, service.DeleteAdmin(context.Background(), root.ID, 999), "NOT_FOUND")

		_, err := service.BanAdmin(context.Background(), root.ID, 999)
		assertCode(t, err, "NOT_FOUND")
	})

	t.Run("super_admin_target", func(t *testing.T) {
		assertCode(t, service.DeleteAdmin(context.Background(), worker.ID, root.ID), "FORBIDDEN")

		_, err := service.BanAdmin(context.Background(), worker.ID, root.ID)
		assertCode(t, err, "FORBIDDEN")

		_, err = service.UpdateAdmin(context.Background(), root.ID, admin.ProfileUpdate{})
		assertCode(t, err, "FORBIDDEN")
	})

	t.Run("self_target_no_mutation", func(t *testing.T) {
		assertCode(t, service.DeleteAdmin(context.Background(), worker.ID, worker.ID), "SELF_PROTECTION")

		_, err := service.BanAdmin(context.Background(), worker.ID, worker.ID)
		assertCode(t, err, "SELF_PROTECTION")

		// The row must be untouched.
		still, findErr := repo.FindByID(context.Background(), worker.ID)
		require.NoError(t, findErr)
		assert.False(t, still.IsBanned)
	})

	t.Run("ban_unban_cycle", func(t *testing.T) {
		banned, err := service.BanAdmin(context.Background(), root.ID, worker.ID)
		require.NoError(t, err)
		assert.True(t, banned.IsBanned)

		isBanned, exists, err := repo.BanStatus(context.Background(), worker.ID)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.True(t, isBanned)

		unbanned, err := service.UnbanAdmin(context.Background(), root.ID, worker.ID)
		require.NoError(t, err)
		assert.False(t, unbanned.IsBanned)
	})

	t.Run("update_email_collision", func(t *testing.T) {
		taken := "root@innohub.io"
		_, err := service.UpdateAdmin(context.Background(), worker.ID, admin.ProfileUpdate{Email: &taken})
		assertCode(t, err, "EMAIL_TAKEN")
	})
}

/*
TestListAdmins verifies the presentation order: super_admin rows first, then
newest first.
*/
func TestListAdmins(t *testing.T) {
	service, repo := testService(t)
	seedAccount(t, repo, "Older Worker", "w1@innohub.io", "secret123", sec.RoleAdmin)
	seedAccount(t, repo, "Root", "root@innohub.io", "secret123", sec.RoleSuperAdmin)
	seedAccount(t, repo, "Newer Worker", "w2@innohub.io", "secret123", sec.RoleAdmin)

	accounts, err := service.ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	assert.Equal(t, "root@innohub.io", accounts[0].Email)
	assert.Equal(t, "w2@innohub.io", accounts[1].Email)
	assert.Equal(t, "w1@innohub.io", accounts[2].Email)
}

// # Bootstrap

/*
TestBootstrap verifies idempotent first-super-admin provisioning and that
the bootstrapped credentials actually work end to end.
*/
func TestBootstrap(t *testing.T) {
	service, repo := testService(t)

	require.NoError(t, service.Bootstrap(context.Background(), "Root", "root@innohub.io", "secret123"))
	require.NoError(t, service.Bootstrap(context.Background(), "Root", "root@innohub.io", "secret123"))

	assert.Len(t, repo.accounts, 1)

	session, err := service.Login(context.Background(), "root@innohub.io", "secret123")
	require.NoError(t, err)
	assert.Equal(t, sec.RoleSuperAdmin, session.Account.Role)
}
