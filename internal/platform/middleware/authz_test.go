// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innohub/api/internal/platform/ctxutil"
	"github.com/innohub/api/internal/platform/middleware"
	"github.com/innohub/api/internal/platform/sec"
)

// stubVerifier accepts exactly one token string.
type stubVerifier struct {
	valid  string
	claims *sec.AuthClaims
}

func (s *stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token == s.valid {
		return s.claims, nil
	}
	return nil, errors.New("bad token")
}

// stubBanChecker serves canned ban states keyed by account ID.
type stubBanChecker struct {
	banned map[int64]bool
}

func (s *stubBanChecker) BanStatus(_ context.Context, accountID int64) (bool, bool, error) {
	isBanned, exists := s.banned[accountID]
	return isBanned, exists, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Code
}

func requestWithClaims(claims *sec.AuthClaims) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthAdmin(request.Context(), claims))
	}
	return request
}

/*
TestAuthenticate verifies the global token extraction behavior: anonymous
requests pass through, bad credentials abort with 403, good credentials
populate the request context.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &stubVerifier{
		valid:  "good-token",
		claims: &sec.AuthClaims{AccountID: 1, Email: "a@innohub.io", Role: "admin"},
	}

	var seenClaims *sec.AuthClaims
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenClaims = ctxutil.GetAuthAdmin(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticate(verifier)(next)

	t.Run("no_header_is_anonymous", func(t *testing.T) {
		seenClaims = nil
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, seenClaims)
	})

	t.Run("malformed_header_forbidden", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "NotBearer xyz")
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, recorder))
	})

	t.Run("invalid_token_forbidden", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer forged")
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, recorder))
	})

	t.Run("valid_token_injects_claims", func(t *testing.T) {
		seenClaims = nil
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer good-token")
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, seenClaims)
		assert.Equal(t, int64(1), seenClaims.AccountID)
	})
}

/*
TestRequireAdmin verifies the 401/403 split: missing credentials are 401,
present-but-insufficient credentials are 403.
*/
func TestRequireAdmin(t *testing.T) {
	handler := middleware.RequireAdmin(okHandler())

	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		wantStatus int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"empty_role", &sec.AuthClaims{AccountID: 1}, http.StatusForbidden},
		{"non_admin_role", &sec.AuthClaims{AccountID: 1, Role: "viewer"}, http.StatusForbidden},
		{"admin", &sec.AuthClaims{AccountID: 1, Role: "admin"}, http.StatusOK},
		{"super_admin", &sec.AuthClaims{AccountID: 1, Role: "super_admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, requestWithClaims(tt.claims))
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestRequireSuperAdmin verifies that plain admins cannot reach super-admin
routes.
*/
func TestRequireSuperAdmin(t *testing.T) {
	handler := middleware.RequireSuperAdmin(okHandler())

	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		wantStatus int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"admin", &sec.AuthClaims{AccountID: 1, Role: "admin"}, http.StatusForbidden},
		{"super_admin", &sec.AuthClaims{AccountID: 1, Role: "super_admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, requestWithClaims(tt.claims))
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestRequireNotBanned verifies the live ban re-check: a ban takes effect on
the very next request even though the token itself is still valid.
*/
func TestRequireNotBanned(t *testing.T) {
	checker := &stubBanChecker{banned: map[int64]bool{
		1: false,
		2: true,
	}}
	handler := middleware.RequireNotBanned(checker)(okHandler())

	t.Run("anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, requestWithClaims(nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("active_account_passes", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, requestWithClaims(&sec.AuthClaims{AccountID: 1, Role: "admin"}))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("banned_account_forbidden", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, requestWithClaims(&sec.AuthClaims{AccountID: 2, Role: "admin"}))
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "ACCOUNT_BANNED", errorCode(t, recorder))
	})

	t.Run("deleted_account_passes_through", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, requestWithClaims(&sec.AuthClaims{AccountID: 99, Role: "admin"}))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
