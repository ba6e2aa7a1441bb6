// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atelierhq/atelier/internal/platform/apperr"
	"github.com/atelierhq/atelier/internal/platform/constants"
	"github.com/atelierhq/atelier/internal/platform/dberr"
	"github.com/atelierhq/atelier/internal/platform/sec"
	"github.com/atelierhq/atelier/pkg/uuidv7"
)

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given admin.
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

// Service implements admin authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, the
// allow-list check, or session rotation need a second pair of eyes.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	allowedEmails     []string
	logger            *slog.Logger
	now               func() time.Time
}

// NewService constructs an auth [Service]. allowedEmails is the static
// allow-list from configuration; accounts outside it cannot authenticate.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	allowedEmails []string,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		allowedEmails:     allowedEmails,
		logger:            logger,
		now:               time.Now,
	}
}

// isAllowed reports whether an email is on the admin allow-list.
func (service *Service) isAllowed(email string) bool {
	for _, allowed := range service.allowedEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established admin session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

// Login validates admin credentials and issues security tokens.
//
// # Flow
//  1. Lookup the account by email.
//  2. Verify the password hash with bcrypt.
//  3. Check allow-list membership and account status.
//  4. Issue a short-lived JWT plus an opaque refresh token session.
//
// Every rejection returns the same generic [apperr.Unauthorized] so a caller
// cannot distinguish a wrong password from an unknown or de-listed email.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	// ── 1. Fetch Account ──────────────────────────────────────────────────

	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 2. Credential Verification ────────────────────────────────────────

	// Bcrypt comparison is constant-time, which prevents timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 3. Allow-List Gate ────────────────────────────────────────────────

	// The password check runs first so a de-listed admin's attempt costs
	// the same as anyone else's. Membership is re-checked on every login
	// and refresh: removing an email from configuration locks the account
	// out without touching the database.
	if !service.isAllowed(user.Email) || !user.IsActive {
		service.logger.Warn("login_rejected_not_allow_listed", slog.String("user_id", user.ID))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 4. Token Issuance ─────────────────────────────────────────────────

	session, err := service.issueSession(context, user, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	if err := service.userRepository.TouchLastLogin(context, user.ID); err != nil {
		// Last-login is bookkeeping; a failed touch must not fail the login.
		service.logger.Error("touch_last_login_failed", slog.Any("error", err))
	}

	service.logger.Info("admin_logged_in", slog.String("user_id", user.ID))
	return session, nil
}

// Logout permanently revokes the session behind the given refresh token.
// Logout is idempotent: an unknown or already-revoked token is a success.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	tokenHash := sec.HashToken(refreshToken)
	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)
	if err != nil {
		return nil
	}

	if err := service.sessionRepository.Revoke(context, session.ID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.Info("admin_logged_out", slog.String("user_id", session.UserID))
	return nil
}

// RefreshSession implements refresh token rotation. It verifies the existing
// refresh token, revokes it so it can never be replayed, and issues a fresh
// pair of access and refresh tokens.
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	// ── 1. Find Existing Session ──────────────────────────────────────────

	tokenHash := sec.HashToken(refreshToken)
	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// ── 2. Rotation (Revoke Old Session) ──────────────────────────────────

	if err := service.sessionRepository.Revoke(context, session.ID); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	// ── 3. Re-Verify the Account ──────────────────────────────────────────

	user, err := service.userRepository.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// The allow-list is consulted on refresh as well, so removing an admin
	// from configuration cuts off their session within one access-token TTL.
	if !service.isAllowed(user.Email) || !user.IsActive {
		service.logger.Warn("refresh_rejected_not_allow_listed", slog.String("user_id", user.ID))
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// ── 4. Issue New Tokens ───────────────────────────────────────────────

	return service.issueSession(context, user, userAgent, ipAddress)
}

// GetUser returns the account behind an authenticated request.
func (service *Service) GetUser(context context.Context, id string) (*User, error) {
	return service.userRepository.FindByID(context, id)
}

// EnsureAdmins seeds accounts for allow-listed emails that have no row yet.
// Called once at startup. Existing accounts are left untouched, so a changed
// initial password never rewrites a live credential.
func (service *Service) EnsureAdmins(context context.Context, initialPassword string) error {
	for _, email := range service.allowedEmails {
		_, err := service.userRepository.FindByEmail(context, email)
		if err == nil {
			continue
		}
		if !errors.Is(err, dberr.ErrNotFound) {
			return fmt.Errorf("auth_service_ensure_admins_lookup_failed: %w", err)
		}

		if initialPassword == "" {
			service.logger.Warn("admin_account_missing_no_initial_password", slog.String("email", email))
			continue
		}

		hashedPassword, err := sec.HashPassword(initialPassword)
		if err != nil {
			return fmt.Errorf("auth_service_ensure_admins_hash_failed: %w", err)
		}

		user := &User{
			ID:           uuidv7.Must(),
			Email:        email,
			PasswordHash: hashedPassword,
			DisplayName:  "Admin",
			Role:         sec.RoleAdmin,
			IsActive:     true,
		}

		if err := service.userRepository.Create(context, user); err != nil {
			return fmt.Errorf("auth_service_ensure_admins_create_failed: %w", err)
		}

		service.logger.Info("admin_account_seeded", slog.String("user_id", user.ID))
	}

	return nil
}

// issueSession mints the access token and a fresh refresh-token session.
func (service *Service) issueSession(context context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, user.Role, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	expiresAt := service.now().Add(constants.RefreshTokenTTL)
	session := &Session{
		ID:        uuidv7.Must(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
		IsRevoked: false,
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}
