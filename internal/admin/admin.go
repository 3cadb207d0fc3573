// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

/*
Package admin implements the admin-account identity and lifecycle layer.

It defines the core Account entity and the logic for authentication,
authorization, and super-admin account management.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
transport dependencies and encapsulates all business rules related to
admin identity: credential verification, role fixing, ban enforcement,
and the self-protection invariants.
*/
package admin

import (
	"time"

	"github.com/innohub/api/internal/platform/sec"
)

// # Domain Entities

// Account represents a content-editor account of the InnoHub admin panel.
//
// The JSON shape of Account is the public projection: the password digest is
// explicitly omitted and must never travel to a client.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role  `json:"role"`
	IsBanned     bool      `json:"is_banned"`
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the admin domain.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)
