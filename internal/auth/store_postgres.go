// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelierhq/atelier/internal/platform/database/schema"
	"github.com/atelierhq/atelier/internal/platform/dberr"
)

// ── User Repository ──────────────────────────────────────────────────────────

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func userColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.Password,
		schema.UserAccount.DisplayName, schema.UserAccount.Role, schema.UserAccount.IsActive,
		schema.UserAccount.LastLoginAt, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)
}

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	u := &User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role,
		&u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns(), schema.UserAccount.Table, schema.UserAccount.ID,
	)

	u, err := scanUser(repository.db.QueryRow(ctx, query, id))
	return u, dberr.Wrap(err, "find_user_by_id")
}

func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	// Emails are stored as entered but matched case-insensitively.
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		userColumns(), schema.UserAccount.Table, schema.UserAccount.Email,
	)

	u, err := scanUser(repository.db.QueryRow(ctx, query, email))
	return u, dberr.Wrap(err, "find_user_by_email")
}

func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.Password,
		schema.UserAccount.DisplayName, schema.UserAccount.Role, schema.UserAccount.IsActive,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Role, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) TouchLastLogin(ctx context.Context, userID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW(), %s = NOW() WHERE %s = $1`,
		schema.UserAccount.Table,
		schema.UserAccount.LastLoginAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
	)

	_, err := repository.db.Exec(ctx, query, userID)
	return dberr.Wrap(err, "touch_last_login")
}

func (repository *PostgresUserRepository) UpdatePassword(ctx context.Context, userID, newHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.UserAccount.Table,
		schema.UserAccount.Password, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_password")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// ── Session Repository ───────────────────────────────────────────────────────

// PostgresSessionRepository implements [SessionRepository].
type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (repository *PostgresSessionRepository) Create(ctx context.Context, session *Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		schema.UserSession.Table,
		schema.UserSession.ID, schema.UserSession.UserID, schema.UserSession.TokenHash,
		schema.UserSession.UserAgent, schema.UserSession.IPAddress,
		schema.UserSession.ExpiresAt, schema.UserSession.IsRevoked,
		schema.UserSession.CreatedAt,
		schema.UserSession.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		session.ID, session.UserID, session.TokenHash,
		session.UserAgent, session.IPAddress, session.ExpiresAt, session.IsRevoked,
	).Scan(&session.CreatedAt)
	return dberr.Wrap(err, "create_session")
}

func (repository *PostgresSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	// Revoked and expired sessions are filtered here so callers never see them.
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > NOW()
	`,
		schema.UserSession.ID, schema.UserSession.UserID, schema.UserSession.TokenHash,
		schema.UserSession.UserAgent, schema.UserSession.IPAddress,
		schema.UserSession.ExpiresAt, schema.UserSession.IsRevoked, schema.UserSession.CreatedAt,
		schema.UserSession.Table,
		schema.UserSession.TokenHash, schema.UserSession.IsRevoked, schema.UserSession.ExpiresAt,
	)

	session := &Session{}
	err := repository.db.QueryRow(ctx, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.UserAgent, &session.IPAddress,
		&session.ExpiresAt, &session.IsRevoked, &session.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_session_by_token_hash")
	}

	return session, nil
}

func (repository *PostgresSessionRepository) Revoke(ctx context.Context, sessionID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE, %s = NOW() WHERE %s = $1`,
		schema.UserSession.Table,
		schema.UserSession.IsRevoked, schema.UserSession.RevokedAt,
		schema.UserSession.ID,
	)

	_, err := repository.db.Exec(ctx, query, sessionID)
	return dberr.Wrap(err, "revoke_session")
}

func (repository *PostgresSessionRepository) RevokeAll(ctx context.Context, userID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE, %s = NOW() WHERE %s = $1 AND %s = FALSE`,
		schema.UserSession.Table,
		schema.UserSession.IsRevoked, schema.UserSession.RevokedAt,
		schema.UserSession.UserID, schema.UserSession.IsRevoked,
	)

	_, err := repository.db.Exec(ctx, query, userID)
	return dberr.Wrap(err, "revoke_all_sessions")
}

func (repository *PostgresSessionRepository) DeleteExpired(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s <= NOW()`,
		schema.UserSession.Table, schema.UserSession.ExpiresAt,
	)

	_, err := repository.db.Exec(ctx, query)
	return dberr.Wrap(err, "delete_expired_sessions")
}
