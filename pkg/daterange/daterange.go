// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

/*
Package daterange provides the calendar-date helpers used by the exhibition
catalogue: display formatting, coercion of heterogeneous stored date
representations into time.Time, and the three-way lifecycle classification
of a [start, end] interval against "now".

All comparisons are day-granular. The start bound is truncated to the
beginning of its day and the end bound is extended to the end of its day, so
an exhibition that ends today still counts as current, not past.
*/
package daterange

import (
	"context"
	"log/slog"
	"strconv"
	"time"
)

// Status is the lifecycle classification of a date range relative to "now".
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusCurrent  Status = "current"
	StatusPast     Status = "past"
)

// FormatPlaceholder is returned by [Format] for unusable dates. The public
// site renders it verbatim instead of failing the page.
const FormatPlaceholder = "Geçersiz tarih"

// turkishMonths holds the long month names used for display formatting.
var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Format renders a date in the site's long display form, e.g. "2 Ocak 2026".
// A zero time yields [FormatPlaceholder]; Format never fails.
func Format(t time.Time) string {
	if t.IsZero() {
		return FormatPlaceholder
	}
	return strconv.Itoa(t.Day()) + " " + turkishMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// Coerce parses one of the date representations found in stored and submitted
// records: a plain calendar date ("2006-01-02"), an RFC 3339 timestamp, or a
// unix-millisecond integer string.
func Coerce(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(millis).UTC(), nil
}

// CoerceOrNow applies the fail-soft date policy: if raw cannot be parsed, the
// current moment is substituted and the incident is logged, trading
// correctness for availability on malformed legacy data. The substitution
// lives here, in one place, so the policy stays swappable.
func CoerceOrNow(ctx context.Context, logger *slog.Logger, raw string) time.Time {
	t, err := Coerce(raw)
	if err != nil {
		logger.WarnContext(ctx, "date_coercion_failed",
			slog.String("raw", raw),
			slog.Any("error", err),
		)
		return time.Now()
	}
	return t
}

// StartOfDay truncates t to 00:00:00 of its calendar day.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay extends t to the last representable instant of its calendar day.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Classify returns the lifecycle status of the [start, end] interval at the
// given moment.
//
// # Rules
//
//   - upcoming if start-of-day(start) > start-of-day(now)
//   - current  if start-of-day(start) <= start-of-day(now) <= end-of-day(end)
//   - past     otherwise
func Classify(now, start, end time.Time) Status {
	today := StartOfDay(now)
	opens := StartOfDay(start)
	closes := EndOfDay(end)

	switch {
	case opens.After(today):
		return StatusUpcoming
	case !opens.After(today) && !closes.Before(today):
		return StatusCurrent
	default:
		return StatusPast
	}
}

// IsOver reports whether the range has fully ended relative to now, using the
// same end-of-day extension as [Classify]. This is the two-way boundary the
// exhibition list uses to split upcoming∪current from past.
func IsOver(now, end time.Time) bool {
	return EndOfDay(end).Before(StartOfDay(now))
}
