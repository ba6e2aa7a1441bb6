// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/platform/apperr"
)

/*
TestValidator_Chain verifies that multiple failed rules accumulate into a
single validation error carrying every field failure.
*/
func TestValidator_Chain(t *testing.T) {
	v := &Validator{}
	err := v.
		Required("title", "").
		Email("email", "not-an-email").
		MaxLen("summary", "çok uzun bir özet", 5).
		Err()

	require.Error(t, err)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
	assert.Len(t, appErr.Details, 3)
}

func TestValidator_AllPass(t *testing.T) {
	v := &Validator{}
	err := v.
		Required("title", "Kış Sergisi").
		Email("email", "hello@atelier.gallery").
		Slug("slug", "kis-sergisi-2026").
		URL("cover", "https://atelier.gallery/uploads/cover.jpg").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name  string
		value string
		fails bool
	}{
		{"empty", "", true},
		{"whitespace_only", "   \t\n", true},
		{"present", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Validator{}
			v.Required("field", tt.value)
			assert.Equal(t, tt.fails, v.HasErrors())
		})
	}
}

func TestValidator_RequiredDate(t *testing.T) {
	v := &Validator{}
	v.RequiredDate("startDate", time.Time{})
	assert.True(t, v.HasErrors())

	v = &Validator{}
	v.RequiredDate("startDate", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, v.HasErrors())
}

func TestValidator_MaxLen_CountsRunes(t *testing.T) {
	v := &Validator{}
	// 5 runes but more than 5 bytes.
	v.MaxLen("field", "güneş", 5)
	assert.False(t, v.HasErrors())

	v = &Validator{}
	v.MaxLen("field", "güneşli", 5)
	assert.True(t, v.HasErrors())
}

func TestValidator_Slug(t *testing.T) {
	tests := []struct {
		name  string
		value string
		fails bool
	}{
		{"valid", "sanat-ve-yasam", false},
		{"valid_with_digits", "sergi-2026", false},
		{"uppercase", "Sanat", true},
		{"leading_hyphen", "-sanat", true},
		{"trailing_hyphen", "sanat-", true},
		{"double_hyphen", "sanat--yasam", true},
		{"spaces", "sanat yasam", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Validator{}
			v.Slug("slug", tt.value)
			assert.Equal(t, tt.fails, v.HasErrors())
		})
	}
}

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		fails bool
	}{
		{"https", "https://atelier.gallery/about", false},
		{"http", "http://localhost:8080/uploads/x.jpg", false},
		{"no_scheme", "atelier.gallery/about", true},
		{"relative", "/uploads/x.jpg", true},
		{"ftp", "ftp://atelier.gallery/x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Validator{}
			v.URL("url", tt.value)
			assert.Equal(t, tt.fails, v.HasErrors())
		})
	}
}

func TestValidator_Custom(t *testing.T) {
	v := &Validator{}
	v.Custom("endDate", true, "End date must not precede start date")
	require.True(t, v.HasErrors())

	err := v.Err()
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "endDate", appErr.Details[0].Field)
}

func TestRequiredError(t *testing.T) {
	err := RequiredError("title", "This field is required")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeValidation, err.Code)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "title", err.Details[0].Field)
}
