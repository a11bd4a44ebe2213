package logbook

import (
	"testing"
	"time"

	"github.com/tmather/daybook/internal/apperr"
)

func TestNewEntryValid(t *testing.T) {
	e, err := NewEntry(TypeWorkout, "2024-01-17T09:30:00Z", "30m", "morning run")
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	if e.Type != "workout" || e.Duration != "30m" || e.Message != "morning run" {
		t.Errorf("unexpected entry: %+v", e)
	}
	want := time.Date(2024, time.January, 17, 9, 30, 0, 0, time.UTC)
	if !e.Datetime.Equal(want) {
		t.Errorf("datetime = %v, want %v", e.Datetime, want)
	}
}

func TestNewEntryDefaultsToNow(t *testing.T) {
	before := time.Now()
	e, err := NewEntry(TypeCustom, "", "", "")
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	if e.Datetime.Before(before) || time.Since(e.Datetime) > time.Minute {
		t.Errorf("datetime not near now: %v", e.Datetime)
	}
}

func TestNewEntryDateOnly(t *testing.T) {
	e, err := NewEntry(TypeMeditated, "2024-01-17", "", "")
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	y, m, d := e.Datetime.Date()
	if y != 2024 || m != time.January || d != 17 {
		t.Errorf("datetime = %v", e.Datetime)
	}
}

func TestNewEntryRejectsBadDuration(t *testing.T) {
	_, err := NewEntry(TypeWorkout, "", "10x", "")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNewEntryRejectsBadDatetime(t *testing.T) {
	_, err := NewEntry(TypeWorkout, "not-a-date", "", "")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNewEntryRejectsUnknownType(t *testing.T) {
	_, err := NewEntry("napped", "", "", "")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestParseDatetimeLayouts(t *testing.T) {
	for _, s := range []string{
		"2023-04-15T14:30:00-04:00",
		"2023-04-15T14:30:00",
		"2023-04-15",
	} {
		if _, err := ParseDatetime(s); err != nil {
			t.Errorf("ParseDatetime(%q): %v", s, err)
		}
	}
	if _, err := ParseDatetime("2023-13-40"); err == nil {
		t.Error("out-of-range date should fail")
	}
}
