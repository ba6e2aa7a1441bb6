// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package auth

import (
	"context"
)

// UserRepository defines the data access contract for admin accounts.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresUserRepository]).
type UserRepository interface {
	// FindByID returns the account with the given ID, or dberr.ErrNotFound.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email, or
	// dberr.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a new admin account. Only the allow-list bootstrap
	// path calls this; there is no public registration.
	Create(ctx context.Context, user *User) error

	// TouchLastLogin records a successful login timestamp.
	TouchLastLogin(ctx context.Context, userID string) error

	// UpdatePassword replaces only the account's password hash. Kept
	// separate from profile updates so an unrelated write can never
	// clobber credentials.
	UpdatePassword(ctx context.Context, userID, newHash string) error
}

// SessionRepository defines the data access contract for refresh-token
// sessions.
type SessionRepository interface {
	// Create persists a new session for an authenticated login.
	Create(ctx context.Context, session *Session) error

	// FindByTokenHash returns the live session matching the token hash.
	// Revoked and expired sessions are never returned.
	FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error)

	// Revoke marks a specific session as permanently invalidated.
	Revoke(ctx context.Context, sessionID string) error

	// RevokeAll revokes every active session belonging to the userID.
	// Used when a password changes or an account is removed from the
	// allow-list.
	RevokeAll(ctx context.Context, userID string) error

	// DeleteExpired physically removes sessions past their ExpiresAt.
	// Called by a periodic background cleanup.
	DeleteExpired(ctx context.Context) error
}
