// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a
strongly-typed Go struct, providing early validation and default values.

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, auth) via constructors.
  - Zero Hidden State: No global variables are used to store config. The admin
    e-mail allow-list in particular is an explicit value handed to the auth
    service at startup, never read ambiently.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Atelier API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for access-token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Admin access control.
	//
	// AdminEmails is the comma-separated allow-list of accounts permitted to
	// use the admin panel. AdminInitialPassword seeds missing allow-listed
	// accounts on first startup so a fresh deployment can log in.
	AdminEmails          []string `env:"ADMIN_EMAILS,required" envSeparator:","`
	AdminInitialPassword string   `env:"ADMIN_INITIAL_PASSWORD"`

	// Object storage (disk-backed, served under /uploads/)
	UploadDir     string `env:"UPLOAD_DIR"      envDefault:"./data/uploads"`
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`

	// RevalidateSecret is the shared secret guarding the page-cache purge
	// endpoint (GET /api/revalidate).
	RevalidateSecret string `env:"REVALIDATE_SECRET,required"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Allow-list entries are matched exactly against stored account e-mails,
	// so stray whitespace from the env value must go.
	for i, email := range cfg.AdminEmails {
		cfg.AdminEmails[i] = strings.TrimSpace(email)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExtraOriginList returns the parsed EXTRA_ORIGINS entries, trimmed of
// whitespace with empty entries removed.
func (c *Config) ExtraOriginList() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
