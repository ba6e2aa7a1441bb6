// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelierhq/atelier/pkg/slug"
)

/*
TestFrom covers the strip-only slug rule, including the documented behavior
for Turkish titles: non-ASCII letters are removed, never transliterated.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "My First Post", "my-first-post"},
		{"punctuation_stripped", "Hello, World!", "hello-world"},
		{"whitespace_collapsed", "a   b\tc", "a-b-c"},
		{"repeated_hyphens_collapsed", "a -- b", "a-b"},
		{"edge_hyphens_trimmed", "- trimmed -", "trimmed"},
		{"turkish_letters_removed_not_transliterated", "Sanat & Yaşam: Bir Deneme!", "sanat-yaam-bir-deneme"},
		{"digits_kept", "Top 10 Paintings of 2024", "top-10-paintings-of-2024"},
		{"empty", "", ""},
		{"only_symbols", "!?&", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Idempotent verifies that slugifying an already-slugified string
yields the same string.
*/
func TestFrom_Idempotent(t *testing.T) {
	inputs := []string{
		"My First Post",
		"Sanat & Yaşam: Bir Deneme!",
		"already-a-slug",
		"Top 10 Paintings of 2024",
	}

	for _, input := range inputs {
		once := slug.From(input)
		assert.Equal(t, once, slug.From(once), "slug must be a fixed point for %q", input)
	}
}
