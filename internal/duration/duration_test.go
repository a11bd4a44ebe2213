package duration

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		token string
		want  int
	}{
		{"1h", 3600},
		{"30m", 1800},
		{"45s", 45},
		{"90m", 5400},
		{"0s", 0},
		{"", 0},
		{"10x", 0},
		{"h", 0},
		{"1h30m", 0},
		{"-5m", 0},
	}
	for _, c := range cases {
		if got := Parse(c.token); got != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.token, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{3600, "1h"},
		{1800, "30m"},
		{45, "45s"},
		{5400, "1h 30m"},
		{3661, "1h 1m 1s"},
		{0, ""},
	}
	for _, c := range cases {
		if got := Format(c.seconds); got != c.want {
			t.Errorf("Format(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	// Format fully decomposes, so the token may differ but the total
	// seconds must survive the round trip.
	for _, token := range []string{"90m", "2h", "3700s", "59s"} {
		secs := Parse(token)
		formatted := Format(secs)
		total := 0
		for _, part := range splitParts(formatted) {
			total += Parse(part)
		}
		if total != secs {
			t.Errorf("round trip %q: Parse=%d, reparsed %q=%d", token, secs, formatted, total)
		}
	}
}

func splitParts(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}

func TestValidate(t *testing.T) {
	if err := Validate(""); err != nil {
		t.Errorf("empty token should be valid: %v", err)
	}
	if err := Validate("10m"); err != nil {
		t.Errorf("10m should be valid: %v", err)
	}
	if err := Validate("10x"); err == nil {
		t.Error("10x should be invalid")
	}
	if err := Validate("m10"); err == nil {
		t.Error("m10 should be invalid")
	}
}
