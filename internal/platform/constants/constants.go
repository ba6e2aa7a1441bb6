// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

/*
Package constants provides centralized, immutable values for the portfolio
backend.

It defines default timeouts, rate limits, upload path conventions, and
cross-cutting keys shared between layers, keeping magic strings and numbers
out of the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "atelier-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Image uploads are multipart and can be slow on mobile connections.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "atelier.gallery"

	// AccessTokenTTL bounds the impact window of a leaked access token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the lifetime of a refresh session.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenCookieName is the name of the cookie that stores the refresh token.
	RefreshTokenCookieName = "refresh_token"

	// RefreshTokenCookiePath is the scoped path for the refresh token cookie.
	RefreshTokenCookiePath = "/api/v1/auth"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderXCache        = "X-Cache"
)

// # JSON Field Identifiers

const (
	FieldCode  = "code"
	FieldError = "error"
)

// # Object Storage Path Conventions
//
// These prefixes mirror the layout the site has always used; existing image
// URLs depend on them.

const (
	StoragePrefixExhibitionCovers    = "exhibition_covers"
	StoragePrefixExhibitionGalleries = "exhibition_galleries"
	StoragePrefixPaintings           = "paintings"
	StoragePrefixBlogImages          = "blog-images"
	StoragePrefixAbout               = "about"
)

// # Database Schemas

const (
	SchemaContent = "content"
	SchemaUsers   = "users"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixPage keys cached public page responses by site path.
	RedisPrefixPage = "cache:page:"
)

// # Page Cache

const (
	// PageCacheTTL bounds staleness of public pages even if an invalidation
	// is missed.
	PageCacheTTL = 1 * time.Hour
)
