// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

// Package auth implements admin authentication for the Atelier panel.
//
// # Access Model
//
// There is no self-service registration. The set of people who may sign in
// is a static allow-list supplied through configuration, and an account that
// falls off the allow-list is locked out on its next login or token refresh
// even if its row still exists.
package auth

import (
	"time"
)

// User is an administrator account. Every user in the system is an admin;
// visitor-facing features never require an account.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string     `json:"display_name"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Session represents an active refresh-token session.
//
// # Security Concept
//
// Access tokens (JWT) are stateless and cannot be revoked before they expire.
// To mitigate this, Atelier pairs short-lived JWTs with long-lived sessions
// stored in the database. When the JWT expires the client presents the
// session's refresh token to obtain a new one, and revoking the session logs
// the admin out everywhere.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
}
