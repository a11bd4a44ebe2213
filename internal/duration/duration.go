// Package duration parses and formats compact duration tokens such as
// "30m", "1h", or "45s".
package duration

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tmather/daybook/internal/apperr"
)

var tokenRe = regexp.MustCompile(`^(\d+)([hms])$`)

// Parse converts a duration token to seconds. Tokens that do not match the
// grammar yield 0 rather than an error; callers that need strictness must
// run Validate first.
func Parse(token string) int {
	m := tokenRe.FindStringSubmatch(token)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	switch m[2] {
	case "h":
		return n * 3600
	case "m":
		return n * 60
	}
	return n
}

// Format renders seconds as a fully decomposed token list, e.g. 5400 ->
// "1h 30m". Zero components are omitted; an all-zero duration renders as "".
func Format(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	if minutes > 0 {
		parts = append(parts, strconv.Itoa(minutes)+"m")
	}
	if secs > 0 {
		parts = append(parts, strconv.Itoa(secs)+"s")
	}
	return strings.Join(parts, " ")
}

// Validate is the strict gate that must run before Parse or persistence.
// An empty token means "no duration recorded" and is valid.
func Validate(token string) error {
	if token == "" {
		return nil
	}
	if !tokenRe.MatchString(token) {
		return apperr.Validation("duration",
			"use a number followed by 'h' (hours), 'm' (minutes), or 's' (seconds)")
	}
	return nil
}
