// Package journal maps (kind, date) pairs to deterministic note paths under
// journals/ and provisions notes from templates on first access.
package journal

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tmather/daybook/internal/apperr"
)

// Kind selects the journal granularity.
type Kind string

const (
	Daily   Kind = "daily"
	Weekly  Kind = "weekly"
	Monthly Kind = "monthly"
)

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Daily, Weekly, Monthly:
		return Kind(s), nil
	}
	return "", fmt.Errorf("journal: unknown kind %q", s)
}

// PathFor returns the canonical root-relative path for a journal note.
// It is a pure function of (kind, date): repeated calls yield the same path.
func PathFor(kind Kind, date time.Time) (string, error) {
	daily, err := dailyPath(date)
	if err != nil {
		return "", err
	}
	switch kind {
	case Daily:
		return daily, nil
	case Weekly:
		monday := MondayOf(date.UTC())
		return filepath.Join(filepath.Dir(daily), fmt.Sprintf("week-of-%d.md", monday.Day())), nil
	case Monthly:
		return filepath.Join(filepath.Dir(daily), "index.md"), nil
	}
	return "", fmt.Errorf("journal: unknown kind %q", kind)
}

// dailyPath decomposes the ISO date portion of the instant using UTC
// calendar fields, so a given instant maps to the same path regardless of
// the local timezone.
func dailyPath(date time.Time) (string, error) {
	iso := date.UTC().Format("2006-01-02")
	parts := strings.SplitN(iso, "-", 3)
	year := parts[0]
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", fmt.Errorf("journal: month %q out of range: %w", parts[1], apperr.ErrInvalidDate)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return "", fmt.Errorf("journal: day %q out of range: %w", parts[2], apperr.ErrInvalidDate)
	}
	return filepath.Join("journals", year, strconv.Itoa(month), strconv.Itoa(day)+".md"), nil
}

// MondayOf returns the Monday on or before date. Sunday counts as day 7 of
// its week, so it maps to the preceding Monday.
func MondayOf(date time.Time) time.Time {
	back := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -back)
}
