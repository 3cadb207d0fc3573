// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innohub/api/internal/platform/ctxutil"
	"github.com/innohub/api/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthAdmin verifies that AuthClaims can be stored in context.
*/
func TestContext_AuthAdmin(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		AccountID: 123,
		Email:     "admin@innohub.io",
		Role:      "admin",
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAuthAdmin(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAuthAdmin(ctx, claims)
	got := ctxutil.GetAuthAdmin(ctx)
	assert.Equal(t, claims, got)
	assert.Equal(t, int64(123), got.AccountID)
}
