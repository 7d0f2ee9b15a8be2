package inference

import "testing"

func TestDetectStringFormat(t *testing.T) {
	cases := []struct {
		input string
		want  StringFormat
	}{
		{"550e8400-e29b-41d4-a716-446655440000", FormatUUID},
		{"https://example.com/path?q=1", FormatURL},
		{"http://localhost:8080", FormatURL},
		{"user@example.com", FormatEmail},
		{"plain text", FormatNone},
		{"", FormatNone},
		{"not-a-uuid-550e8400", FormatNone},
		{"example.com", FormatNone}, // no scheme, not a URL
	}

	for _, c := range cases {
		if got := DetectStringFormat(c.input); got != c.want {
			t.Errorf("DetectStringFormat(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"name", "_private", "$el", "camelCase", "x1"}
	invalid := []string{"", "1x", "kebab-case", "with space", "dot.ted"}

	for _, s := range valid {
		if !isValidIdentifier(s) {
			t.Errorf("isValidIdentifier(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if isValidIdentifier(s) {
			t.Errorf("isValidIdentifier(%q) = true, want false", s)
		}
	}
}
