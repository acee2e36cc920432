// Package dates computes the number of days until the next annual occurrence
// of a calendar date, anchored to local midnight of the reference instant.
// These are pure functions; the caller supplies the reference time so tests
// and the job runner share one clock.
package dates

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"dateminder/internal/types"
)

// DaysUntilFixed returns the number of whole days from local midnight of now
// to the next occurrence of month/day: this year if the date has not yet
// passed, otherwise next year. The result is always >= 0, and 0 on the date's
// own day.
func DaysUntilFixed(now time.Time, month time.Month, day int) int {
	today := midnight(now)
	next := time.Date(today.Year(), month, day, 0, 0, 0, 0, today.Location())
	if next.Before(today) {
		next = time.Date(today.Year()+1, month, day, 0, 0, 0, 0, today.Location())
	}
	// Rounding absorbs the 23h/25h days introduced by DST transitions.
	return int(math.Round(next.Sub(today).Hours() / 24))
}

// DaysUntil parses a date string in either "MM-DD" or legacy "YYYY-MM-DD"
// form and returns the days until its next annual occurrence. The year field,
// when present, is ignored: only month and day drive the recurrence.
//
// Malformed input (wrong field count, non-numeric fields, month or day out of
// range) returns a validation error; callers are expected to skip the entry.
func DaysUntil(now time.Time, s string) (int, error) {
	month, day, err := parseMonthDay(s)
	if err != nil {
		return 0, err
	}
	return DaysUntilFixed(now, month, day), nil
}

// parseMonthDay extracts the month and day fields from a hyphen-separated
// date string, validating numeric form and calendar range.
func parseMonthDay(s string) (time.Month, int, error) {
	parts := strings.Split(s, "-")

	var monthField, dayField string
	switch len(parts) {
	case 2:
		monthField, dayField = parts[0], parts[1]
	case 3:
		monthField, dayField = parts[1], parts[2]
	default:
		return 0, 0, types.NewAppError(types.ErrCodeValidationInvalidDate,
			fmt.Sprintf("date %q: want MM-DD or YYYY-MM-DD", s), nil)
	}

	month, err := strconv.Atoi(monthField)
	if err != nil {
		return 0, 0, types.NewAppError(types.ErrCodeValidationInvalidDate,
			fmt.Sprintf("date %q: month is not numeric", s), err)
	}
	day, err := strconv.Atoi(dayField)
	if err != nil {
		return 0, 0, types.NewAppError(types.ErrCodeValidationInvalidDate,
			fmt.Sprintf("date %q: day is not numeric", s), err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, types.NewAppError(types.ErrCodeValidationInvalidDate,
			fmt.Sprintf("date %q: month or day out of range", s), nil)
	}
	return time.Month(month), day, nil
}

// midnight truncates t to 00:00:00 in its own location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
