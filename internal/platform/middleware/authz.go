// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/innohub/api/internal/platform/apperr"
	"github.com/innohub/api/internal/platform/ctxutil"
	"github.com/innohub/api/internal/platform/respond"
	"github.com/innohub/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenService]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// BanChecker reports the live ban flag for an account. It is implemented by
// the admin repository and injected so that this package never imports the
// domain layer.
type BanChecker interface {
	// BanStatus returns (isBanned, exists). An account that no longer exists
	// is reported as (false, false).
	BanStatus(ctx context.Context, accountID int64) (isBanned bool, exists bool, err error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous (route gates reject later with 401).
//  3. If present but malformed or failing verification, abort with 403.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// This middleware never consults the database — it trusts the token's claims
// for the duration of the request. Staleness is accepted by design; ban status
// is re-checked separately by [RequireNotBanned].
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.InvalidToken())
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.InvalidToken())
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthAdmin(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests unless the authenticated principal carries an
// admin or super_admin role claim.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. No claims in context → 401 Unauthenticated.
//  2. Claims present but role claim empty → 403 "role missing".
//  3. Role outside {admin, super_admin} → 403 "admin required".
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthAdmin(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		if claims.Role == "" {
			respond.Error(writer, request, apperr.Forbidden("Role missing from credentials"))
			return
		}
		if !sec.Role(claims.Role).AtLeastAdmin() {
			respond.Error(writer, request, apperr.Forbidden("Admin access required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireSuperAdmin blocks requests unless the authenticated principal is a
// super_admin. It implies [RequireAdmin].
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthAdmin(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		if !sec.Role(claims.Role).IsSuperAdmin() {
			respond.Error(writer, request, apperr.Forbidden("Super admin access required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireNotBanned re-checks the live ban flag for the authenticated
// principal. Unlike [Authenticate] it performs a database round-trip, so it
// is mounted only on sensitive routes.
//
// An account that no longer exists is let through (absence is not equated
// with ban); token-verification endpoints apply the stricter rule.
func RequireNotBanned(checker BanChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthAdmin(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			isBanned, exists, err := checker.BanStatus(request.Context(), claims.AccountID)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}
			if exists && isBanned {
				respond.Error(writer, request, apperr.AccountBanned())
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
