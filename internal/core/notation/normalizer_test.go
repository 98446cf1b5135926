package notation

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_name_cleaner/internal/adapters/segmenter"
	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Close() error                                   { return nil }

func newTestNormalizer(t *testing.T, config Config) *Normalizer {
	t.Helper()
	n, err := NewNormalizer(config, nopLogger{}, segmenter.NewDefaultSegmenter())
	if err != nil {
		t.Fatalf("NewNormalizer failed: %v", err)
	}
	return n
}

func TestNormalizePresets(t *testing.T) {
	tests := []struct {
		name     string
		notation domain.Notation
		input    string
		expected string
	}{
		{name: "snake from acronym", notation: domain.NotationSnake, input: "HTTPServerName", expected: "http_server_name"},
		{name: "snake from words", notation: domain.NotationSnake, input: "John Smith", expected: "john_smith"},
		{name: "snake with digits", notation: domain.NotationSnake, input: "version2update", expected: "version_2_update"},
		{name: "camel", notation: domain.NotationCamel, input: "my cool id", expected: "myCoolId"},
		{name: "camel from snake", notation: domain.NotationCamel, input: "my_variable_name", expected: "myVariableName"},
		{name: "pascal", notation: domain.NotationPascal, input: "my cool id", expected: "MyCoolId"},
		{name: "title", notation: domain.NotationTitle, input: "annual_report_2024", expected: "Annual Report 2024"},
		{name: "title from screaming", notation: domain.NotationTitle, input: "JOHN_SMITH", expected: "John Smith"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Notation = tc.notation
			n := newTestNormalizer(t, config)
			if got := n.Normalize(context.Background(), tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeDefaultCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Title-shaped tokens are lowered, full-caps acronyms survive.
		{name: "acronym survives", input: "fetch HTTPData", expected: "fetch HTTP data"},
		{name: "screaming input is lowered", input: "JOHN_SMITH", expected: "john smith"},
		{name: "lowercase passes through", input: "my cool id", expected: "my cool id"},
		{name: "title tokens are lowered", input: "Annual Report", expected: "annual report"},
	}

	n := newTestNormalizer(t, DefaultConfig())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(context.Background(), tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeCasePolicies(t *testing.T) {
	tests := []struct {
		name     string
		casePol  domain.Case
		input    string
		expected string
	}{
		{name: "lower", casePol: domain.CaseLower, input: "My Cool Id", expected: "my cool id"},
		{name: "upper", casePol: domain.CaseUpper, input: "my cool id", expected: "MY COOL ID"},
		{name: "title", casePol: domain.CaseTitle, input: "my cool id", expected: "My Cool Id"},
		{name: "capitalize", casePol: domain.CaseCapitalize, input: "my COOL id", expected: "My cool id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Case = tc.casePol
			n := newTestNormalizer(t, config)
			if got := n.Normalize(context.Background(), tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeDelimiter(t *testing.T) {
	config := DefaultConfig()
	config.Case = domain.CaseLower
	config.Delimiter = "-"
	n := newTestNormalizer(t, config)

	if got := n.Normalize(context.Background(), "Version 2 Update"); got != "version-2-update" {
		t.Errorf("Normalize = %q, want %q", got, "version-2-update")
	}
}

func TestNormalizePreserveCase(t *testing.T) {
	config := DefaultConfig()
	config.Notation = domain.NotationSnake
	config.PreserveCase = true
	n := newTestNormalizer(t, config)

	if got := n.Normalize(context.Background(), "HTTPServerName"); got != "HTTP_Server_Name" {
		t.Errorf("Normalize = %q, want %q", got, "HTTP_Server_Name")
	}
}

func TestNormalizeUnknownValues(t *testing.T) {
	config := DefaultConfig()
	config.Notation = domain.Notation("banana")
	n := newTestNormalizer(t, config)

	// Unrecognized presets behave exactly like the default.
	if got := n.Normalize(context.Background(), "my cool id"); got != "my cool id" {
		t.Errorf("Normalize = %q, want %q", got, "my cool id")
	}
}

func TestNormalizeDegenerateInput(t *testing.T) {
	config := DefaultConfig()
	config.Notation = domain.NotationSnake
	n := newTestNormalizer(t, config)

	if got := n.Normalize(context.Background(), ""); got != "" {
		t.Errorf("Normalize(empty) = %q, want empty", got)
	}
	if got := n.Normalize(context.Background(), "?!..."); got != "" {
		t.Errorf("Normalize(punctuation) = %q, want empty", got)
	}
}

func TestNormalizeCancelledContext(t *testing.T) {
	n := newTestNormalizer(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := n.Normalize(ctx, "John Smith"); got != "" {
		t.Errorf("Normalize with cancelled context = %q, want empty", got)
	}
}

func TestNewNormalizerValidation(t *testing.T) {
	if _, err := NewNormalizer(DefaultConfig(), nil, segmenter.NewDefaultSegmenter()); err == nil {
		t.Error("expected error for nil logger")
	}
	if _, err := NewNormalizer(DefaultConfig(), nopLogger{}, nil); err == nil {
		t.Error("expected error for nil segmenter")
	}
}
