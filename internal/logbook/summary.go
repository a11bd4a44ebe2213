package logbook

import "github.com/tmather/daybook/internal/duration"

// TypeSummary aggregates one log type over a day.
type TypeSummary struct {
	Count        int    `json:"count"`
	TotalSeconds int    `json:"total_seconds"`
	LastMessage  string `json:"last_message,omitempty"`
}

// Summarize groups entries by type, counting them, totalling parsed
// durations, and keeping the last non-empty message (last wins). The
// result depends on input order only through LastMessage.
func Summarize(entries []Entry) map[string]TypeSummary {
	out := make(map[string]TypeSummary, len(entries))
	for _, e := range entries {
		s := out[e.Type]
		s.Count++
		s.TotalSeconds += duration.Parse(e.Duration)
		if e.Message != "" {
			s.LastMessage = e.Message
		}
		out[e.Type] = s
	}
	return out
}
