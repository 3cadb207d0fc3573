// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package admin

// # Account Constraints

const (
	// MinPasswordLength is the minimum accepted password length. Anything
	// shorter is rejected before hashing.
	MinPasswordLength = 6

	// MaxNameLength bounds the display name.
	MaxNameLength = 100

	// MaxEmailLength bounds the login identifier.
	MaxEmailLength = 254
)
