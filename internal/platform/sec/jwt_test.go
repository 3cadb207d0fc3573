// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innohub/api/internal/platform/sec"
)

const testSecret = "unit-test-signing-secret"

/*
TestTokenService_RoundTrip verifies that a generated token carries the
account claims through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "innohub.io")
	require.NoError(t, err)

	token, err := service.GenerateToken(42, "admin@innohub.io", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "admin@innohub.io", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "innohub.io", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

/*
TestTokenService_EmptySecret verifies the startup precondition.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "innohub.io")
	assert.Error(t, err)
}

/*
TestTokenService_InvalidTokens verifies the uniform failure behavior for
tampered, garbage, and wrongly-signed tokens.
*/
func TestTokenService_InvalidTokens(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "innohub.io")
	require.NoError(t, err)

	otherService, err := sec.NewTokenService("a-different-secret", "innohub.io")
	require.NoError(t, err)

	foreignToken, err := otherService.GenerateToken(7, "x@innohub.io", "admin")
	require.NoError(t, err)

	validToken, err := service.GenerateToken(7, "x@innohub.io", "admin")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"empty", ""},
		{"wrong_secret", foreignToken},
		{"tampered", validToken + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}
