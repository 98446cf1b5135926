package detect

import (
	"testing"

	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.Convention
	}{
		{name: "snake", text: "user_id", expected: domain.ConventionSnake},
		{name: "snake with digits", text: "field_2_value", expected: domain.ConventionSnake},
		{name: "camel", text: "userId", expected: domain.ConventionCamel},
		{name: "camel long", text: "myVariableName", expected: domain.ConventionCamel},
		{name: "pascal", text: "UserProfile", expected: domain.ConventionPascal},
		{name: "pascal single word", text: "Hello", expected: domain.ConventionPascal},
		{name: "kebab", text: "background-color", expected: domain.ConventionKebab},
		{name: "title", text: "John Smith", expected: domain.ConventionTitle},
		{name: "title with apostrophe", text: "John's Diner", expected: domain.ConventionTitle},
		{name: "upper with underscores", text: "MAX_RETRIES", expected: domain.ConventionUpper},
		{name: "upper bare", text: "HTTP", expected: domain.ConventionUpper},
		{name: "single uppercase letter", text: "A", expected: domain.ConventionUpper},
		{name: "lower", text: "filename", expected: domain.ConventionLower},
		{name: "single lowercase letter", text: "a", expected: domain.ConventionLower},
		{name: "empty", text: "", expected: domain.ConventionUnknown},
		{name: "mixed delimiters", text: "mixed Case_and-stuff", expected: domain.ConventionUnknown},
		{name: "lowercase sentence", text: "not a name", expected: domain.ConventionUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.text); got != tc.expected {
				t.Errorf("Detect(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}

// Every overlap between two patterns must resolve to the earlier one.
func TestDetectOrder(t *testing.T) {
	tests := []struct {
		text     string
		expected domain.Convention
	}{
		// Matches both the snake and kebab alphabets, but snake wins on
		// the underscore.
		{"a_b", domain.ConventionSnake},
		// All-lowercase single token falls through every delimited
		// pattern to LOWERCASE.
		{"abc123", domain.ConventionLower},
		// Digits-only is title-stable but structurally nothing else.
		{"MAX2", domain.ConventionUpper},
	}

	for _, tc := range tests {
		if got := Detect(tc.text); got != tc.expected {
			t.Errorf("Detect(%q) = %q, want %q", tc.text, got, tc.expected)
		}
	}
}

func TestDetectorPort(t *testing.T) {
	d := NewDetector()
	if got := d.Detect("user_id"); got != domain.ConventionSnake {
		t.Errorf("Detector.Detect(user_id) = %q, want %q", got, domain.ConventionSnake)
	}
}
