package segmenter

import "testing"

var segmentCases = []struct {
	name     string
	input    string
	expected string
}{
	{name: "camel", input: "camelCase", expected: "camel Case"},
	{name: "pascal", input: "PascalCaseName", expected: "Pascal Case Name"},
	{name: "acronym prefix", input: "HTTPServerName", expected: "HTTP Server Name"},
	{name: "acronym infix", input: "XMLHttpRequest", expected: "XML Http Request"},
	{name: "snake", input: "snake_case_name", expected: "snake case name"},
	{name: "kebab", input: "kebab-case", expected: "kebab case"},
	{name: "digits between letters", input: "version2update", expected: "version 2 update"},
	{name: "acronym then digit", input: "HTTP2Server", expected: "HTTP 2 Server"},
	{name: "letter digit letter", input: "a1A", expected: "a 1 A"},
	{name: "padded", input: "  padded  name ", expected: "padded name"},
	{name: "punctuation run", input: "foo!!bar", expected: "foo bar"},
	{name: "punctuation only", input: "?!...", expected: ""},
	{name: "empty", input: "", expected: ""},
	{name: "accented boundary", input: "déjàVu", expected: "déjà Vu"},
	{name: "already segmented", input: "plain words here", expected: "plain words here"},
}

func TestDefaultSegmenter(t *testing.T) {
	seg := NewDefaultSegmenter()
	for _, tc := range segmentCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := seg.Segment(tc.input); got != tc.expected {
				t.Errorf("Segment(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestOptimizedSegmenter(t *testing.T) {
	seg := NewOptimizedSegmenter()
	for _, tc := range segmentCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := seg.Segment(tc.input); got != tc.expected {
				t.Errorf("Segment(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

// The two strategies must stay interchangeable.
func TestSegmenterEquivalence(t *testing.T) {
	def := NewDefaultSegmenter()
	opt := NewOptimizedSegmenter()

	inputs := []string{
		"mixedHTTP2Fast4You",
		"weird__--__delims",
		"ALLCAPS",
		"TrailingAcronymID",
		"9lives",
		"x",
	}
	for _, tc := range segmentCases {
		inputs = append(inputs, tc.input)
	}

	for _, input := range inputs {
		if d, o := def.Segment(input), opt.Segment(input); d != o {
			t.Errorf("strategies diverge on %q: default %q, optimized %q", input, d, o)
		}
	}
}

func TestSegmenterFactory(t *testing.T) {
	factory := NewSegmenterFactory()

	if _, ok := factory.CreateSegmenter(DefaultSegmenterType).(*DefaultSegmenter); !ok {
		t.Error("factory did not return a DefaultSegmenter")
	}
	if _, ok := factory.CreateSegmenter(OptimizedSegmenterType).(*OptimizedSegmenter); !ok {
		t.Error("factory did not return an OptimizedSegmenter")
	}
	// Unknown types fall back to the default strategy.
	if _, ok := factory.CreateSegmenter(SegmenterType(42)).(*DefaultSegmenter); !ok {
		t.Error("factory fallback is not the DefaultSegmenter")
	}
}
