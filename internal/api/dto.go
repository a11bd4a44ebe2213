package api

import "github.com/tmather/daybook/internal/logbook"

// LogRequest is the request body for submitting a log entry.
// Datetime is optional and defaults to the moment of submission.
type LogRequest struct {
	Type     string `json:"type"`
	Datetime string `json:"datetime,omitempty"`
	Duration string `json:"duration,omitempty"`
	Message  string `json:"message,omitempty"`
}

// LogListResponse wraps a day's log entries.
type LogListResponse struct {
	Entries []logbook.Entry `json:"entries"`
}

// SummaryResponse wraps the per-type aggregation of a day's entries.
type SummaryResponse struct {
	Summary map[string]logbook.TypeSummary `json:"summary"`
}

// JournalRequest selects the journal note to provision. An explicit Date
// (YYYY-MM-DD) takes precedence over Offset.
type JournalRequest struct {
	Date   string `json:"date,omitempty"`
	Offset *int   `json:"offset,omitempty"`
}

// JournalResponse reports the provisioned note.
type JournalResponse struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// HighlightsRequest is the request body for the reading-highlights upload.
type HighlightsRequest struct {
	Content string `json:"content"`
}

// HighlightsResponse reports the stored highlights file.
type HighlightsResponse struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}
