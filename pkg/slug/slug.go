// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

// Package slug derives URL slugs for blog posts from their titles.
//
// # Usage
//
// Slugs are used as human-readable identifiers for posts (e.g., "yeni-sergi").
// The rule is strip-only: characters outside [a-z0-9], whitespace, and hyphens
// are removed without transliteration, so accented or Turkish letters (ı, ş,
// ğ, ...) simply disappear from the result. This mirrors how the published
// site has always built its post URLs and must not be "fixed" to transliterate.
package slug

import (
	"regexp"
	"strings"
)

var (
	// disallowed matches every character that is not a lowercase ASCII
	// letter, digit, whitespace, or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespaceRun matches one or more consecutive whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts a post title into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Converts to lowercase.
// 2. Strips characters outside [a-z0-9\s-] (no transliteration).
// 3. Replaces whitespace runs with single hyphens.
// 4. Collapses repeated hyphens and trims leading/trailing hyphens.
//
// From is idempotent: applying it to an already-slugified string returns the
// same string.
func From(s string) string {
	result := strings.ToLower(s)
	result = disallowed.ReplaceAllString(result, "")
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}
