// Package logbook implements the structured activity-log record store:
// validated entries appended one JSON line at a time to a per-month file,
// plus the per-day aggregation used by the "today" summary.
package logbook

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tmather/daybook/internal/apperr"
	"github.com/tmather/daybook/internal/duration"
)

// Log entry types. Custom is the catch-all.
const (
	TypeMeditated = "meditated"
	TypeAnkied    = "ankied"
	TypeEyePatch  = "eye-patch"
	TypeWorkout   = "workout"
	TypeCustom    = "custom"
)

// Types is the closed set of log entry types.
var Types = []string{TypeMeditated, TypeAnkied, TypeEyePatch, TypeWorkout, TypeCustom}

// Entry is a single immutable log record. Once appended it is never edited
// or deleted.
type Entry struct {
	Type     string    `json:"type"`
	Datetime time.Time `json:"datetime"`
	Duration string    `json:"duration,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Validate checks the type against the closed set and the duration token
// against the grammar.
func (e Entry) Validate() error {
	types := make([]interface{}, len(Types))
	for i, t := range Types {
		types[i] = t
	}
	if err := validation.ValidateStruct(&e,
		validation.Field(&e.Type, validation.Required, validation.In(types...)),
	); err != nil {
		return apperr.Validation("type", err.Error())
	}
	return duration.Validate(e.Duration)
}

// Accepted datetime input layouts, most specific first.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDatetime parses an ISO-style datetime string in local time.
func ParseDatetime(s string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("datetime",
		"use ISO 8601 format (e.g. '2023-04-15T14:30:00-04:00')")
}

// NewEntry validates the inputs and constructs an Entry. An empty datetime
// defaults to the moment of creation. Validation failures name the field
// that was rejected and nothing is persisted.
func NewEntry(typ, datetime, durationToken, message string) (Entry, error) {
	if err := duration.Validate(durationToken); err != nil {
		return Entry{}, err
	}
	ts := time.Now()
	if datetime != "" {
		parsed, err := ParseDatetime(datetime)
		if err != nil {
			return Entry{}, err
		}
		ts = parsed
	}
	e := Entry{Type: typ, Datetime: ts, Duration: durationToken, Message: message}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}
