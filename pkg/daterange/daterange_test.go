// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package daterange_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/pkg/daterange"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

/*
TestClassify covers the three-way lifecycle rule, including the day-boundary
truncation: a range ending today is still current.
*/
func TestClassify(t *testing.T) {
	now := time.Date(2024, time.June, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  daterange.Status
	}{
		{"fully_in_future", date(2025, time.June, 1), date(2025, time.June, 10), daterange.StatusUpcoming},
		{"fully_in_past", date(2023, time.January, 1), date(2023, time.January, 5), daterange.StatusPast},
		{"spanning_now", date(2024, time.May, 20), date(2024, time.June, 10), daterange.StatusCurrent},
		{"starts_today", date(2024, time.June, 1), date(2024, time.June, 10), daterange.StatusCurrent},
		{"ends_today_still_current", date(2024, time.May, 1), date(2024, time.June, 1), daterange.StatusCurrent},
		{"ended_yesterday", date(2024, time.May, 1), date(2024, time.May, 31), daterange.StatusPast},
		{"starts_tomorrow", date(2024, time.June, 2), date(2024, time.June, 3), daterange.StatusUpcoming},
		{"single_day_today", date(2024, time.June, 1), date(2024, time.June, 1), daterange.StatusCurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daterange.Classify(now, tt.start, tt.end))
		})
	}
}

/*
TestIsOver verifies the two-way boundary used for list partitioning: a range
counts as over only once its end day has fully elapsed.
*/
func TestIsOver(t *testing.T) {
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	assert.False(t, daterange.IsOver(now, date(2024, time.June, 1)), "ends today")
	assert.False(t, daterange.IsOver(now, date(2024, time.June, 5)), "ends later")
	assert.True(t, daterange.IsOver(now, date(2024, time.May, 31)), "ended yesterday")
}

/*
TestCoerce checks the accepted stored date representations.
*/
func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"iso_date", "2024-06-01", date(2024, time.June, 1), false},
		{"rfc3339", "2024-06-01T10:30:00Z", time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC), false},
		{"unix_millis", "1717236000000", time.UnixMilli(1717236000000).UTC(), false},
		{"garbage", "next tuesday", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := daterange.Coerce(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v got %v", tt.want, got)
		})
	}
}

/*
TestCoerceOrNow verifies the fail-soft substitution policy: unparseable input
yields roughly the current moment instead of an error.
*/
func TestCoerceOrNow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	before := time.Now()
	got := daterange.CoerceOrNow(context.Background(), logger, "not-a-date")
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))

	// Valid input passes through untouched.
	parsed := daterange.CoerceOrNow(context.Background(), logger, "2024-06-01")
	assert.True(t, date(2024, time.June, 1).Equal(parsed))
}

/*
TestFormat checks long display formatting and the fixed placeholder for
unusable dates.
*/
func TestFormat(t *testing.T) {
	assert.Equal(t, "2 Ocak 2026", daterange.Format(date(2026, time.January, 2)))
	assert.Equal(t, "15 Ağustos 2024", daterange.Format(date(2024, time.August, 15)))
	assert.Equal(t, daterange.FormatPlaceholder, daterange.Format(time.Time{}))
}
