// namecleaner_test.go
package namecleaner

import (
	"testing"
)

func TestDetectNamingConvention(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Convention
	}{
		{name: "snake case", text: "user_id", expected: ConventionSnake},
		{name: "camel case", text: "userId", expected: ConventionCamel},
		{name: "pascal case", text: "UserProfile", expected: ConventionPascal},
		{name: "kebab case", text: "background-color", expected: ConventionKebab},
		{name: "title case", text: "John Smith", expected: ConventionTitle},
		{name: "upper case", text: "MAX_RETRIES", expected: ConventionUpper},
		{name: "upper case without underscores", text: "HTTP", expected: ConventionUpper},
		{name: "lowercase", text: "filename", expected: ConventionLower},
		{
			name: "single uppercase letter",
			text: "A",
			// A lone uppercase letter is title-stable, but the detector
			// classifies it as UPPER_CASE.
			expected: ConventionUpper,
		},
		{name: "single lowercase letter", text: "a", expected: ConventionLower},
		{name: "empty string", text: "", expected: ConventionUnknown},
		{name: "mixed delimiters", text: "mixed Case_and-stuff", expected: ConventionUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectNamingConvention(tc.text); got != tc.expected {
				t.Errorf("DetectNamingConvention(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}

func TestCheckName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "padded name",
			input:    "  John   Smith  ",
			expected: "outer whitespace; multiple whitespace",
		},
		{
			name:     "clean name",
			input:    "John Smith",
			expected: "",
		},
		{
			name:     "acronym",
			input:    "NASA launch",
			expected: "acronym",
		},
		{
			name:     "brackets and digits",
			input:    "file (copy) 2",
			expected: "brackets; digits; non-alphabetic characters",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckName(tc.input); got != tc.expected {
				t.Errorf("CheckName(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCheckNameIgnoreChars(t *testing.T) {
	// Apostrophe and hyphen would trip the non-alphabetic check unless
	// ignored.
	if got := CheckName("O'Brien-Smith", WithIgnoreChars("'-")); got != "" {
		t.Errorf("CheckName with ignore chars = %q, want empty", got)
	}
	if got := CheckName("O'Brien-Smith"); got != "non-alphabetic characters" {
		t.Errorf("CheckName without ignore chars = %q, want %q", got, "non-alphabetic characters")
	}
}

func TestContainsAcronym(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "standalone acronym", input: "NASA launched", expected: true},
		{name: "capitalized word only", input: "Napa valley", expected: false},
		{name: "parenthesized acronym", input: "space agency (NASA)", expected: true},
		{name: "dotted initialism", input: "made in U.S.A", expected: true},
		{name: "empty string", input: "", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsAcronym(tc.input); got != tc.expected {
				t.Errorf("ContainsAcronym(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestConverterRoundTrip(t *testing.T) {
	original := "myVariableName"
	snake := CamelToSnake(original)
	if snake != "my_variable_name" {
		t.Fatalf("CamelToSnake(%q) = %q, want %q", original, snake, "my_variable_name")
	}
	if got := SnakeToCamel(snake); got != original {
		t.Errorf("SnakeToCamel(%q) = %q, want %q", snake, got, original)
	}
}

func TestConverterIdempotence(t *testing.T) {
	converters := map[string]func(string) string{
		"CamelToSnake":  CamelToSnake,
		"PascalToSnake": PascalToSnake,
		"SnakeToCamel":  SnakeToCamel,
		"SnakeToPascal": SnakeToPascal,
		"TitleToSnake":  TitleToSnake,
		"TitleToCamel":  TitleToCamel,
		"TitleToPascal": TitleToPascal,
	}

	inputs := []string{"my_variable_name", "myVariableName", "MyVariableName", "plain"}

	for name, fn := range converters {
		t.Run(name, func(t *testing.T) {
			for _, input := range inputs {
				once := fn(input)
				twice := fn(once)
				if once != twice {
					t.Errorf("%s not idempotent: %q -> %q -> %q", name, input, once, twice)
				}
			}
		})
	}
}

func TestNormalizeNotation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []NotationOption
		expected string
	}{
		{
			name:     "acronym to snake",
			input:    "HTTPServerName",
			opts:     []NotationOption{WithNotation(NotationSnake)},
			expected: "http_server_name",
		},
		{
			name:     "words to pascal",
			input:    "my cool id",
			opts:     []NotationOption{WithNotation(NotationPascal)},
			expected: "MyCoolId",
		},
		{
			name:     "words to camel",
			input:    "my cool id",
			opts:     []NotationOption{WithNotation(NotationCamel)},
			expected: "myCoolId",
		},
		{
			name:     "words to title",
			input:    "annual_report_2024",
			opts:     []NotationOption{WithNotation(NotationTitle)},
			expected: "Annual Report 2024",
		},
		{
			name:     "default keeps acronym",
			input:    "fetch HTTPData",
			expected: "fetch HTTP data",
		},
		{
			name:     "default lowers screaming input",
			input:    "JOHN_SMITH",
			expected: "john smith",
		},
		{
			name:     "custom case and delimiter",
			input:    "Version 2 Update",
			opts:     []NotationOption{WithCase(CaseLower), WithDelimiter("-")},
			expected: "version-2-update",
		},
		{
			name:     "preserve case with snake delimiter",
			input:    "HTTPServerName",
			opts:     []NotationOption{WithNotation(NotationSnake), WithPreserveCase()},
			expected: "HTTP_Server_Name",
		},
		{
			name:     "capitalize",
			input:    "my cool id",
			opts:     []NotationOption{WithCase(CaseCapitalize)},
			expected: "My cool id",
		},
		{
			name:     "unknown notation behaves as default",
			input:    "my cool id",
			opts:     []NotationOption{WithNotation(Notation("banana"))},
			expected: "my cool id",
		},
		{
			name:     "empty input",
			input:    "",
			opts:     []NotationOption{WithNotation(NotationSnake)},
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "?!...",
			opts:     []NotationOption{WithNotation(NotationSnake)},
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeNotation(tc.input, tc.opts...); got != tc.expected {
				t.Errorf("NormalizeNotation(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFilterIdempotence(t *testing.T) {
	filters := map[string]func(string) string{
		"RemoveNonASCII":           RemoveNonASCII,
		"RemoveNonAlphabetic":      RemoveNonAlphabetic,
		"RemoveNonAlphanumeric":    RemoveNonAlphanumeric,
		"RemoveWhitespace":         RemoveWhitespace,
		"RemoveMultipleWhitespace": RemoveMultipleWhitespace,
		"RemoveOuterWhitespace":    RemoveOuterWhitespace,
		"RemoveRoundBrackets":      RemoveRoundBrackets,
		"RemoveSquareBrackets":     RemoveSquareBrackets,
		"RemoveCurlyBrackets":      RemoveCurlyBrackets,
		"RemoveAngleBrackets":      RemoveAngleBrackets,
		"RemoveWindowsSpecial":     RemoveWindowsSpecialCharacters,
		"ReplaceDashesWithHyphen":  ReplaceDashesWithHyphen,
		"ReplaceAccents":           ReplaceAccents,
		"LowercaseMinorWords":      LowercaseMinorWords,
		"CapitalizeAfterSpace":     CapitalizeAfterSpace,
	}

	inputs := []string{
		"",
		"  file   (copy) [2] {x} <y>  ",
		"Café – Crème & Friends",
		"The Lord Of The Rings",
		"plain_name 42",
	}

	for name, fn := range filters {
		t.Run(name, func(t *testing.T) {
			for _, input := range inputs {
				once := fn(input)
				twice := fn(once)
				if once != twice {
					t.Errorf("%s not idempotent: %q -> %q -> %q", name, input, once, twice)
				}
			}
		})
	}
}

func TestEmptyInputNeverPanics(t *testing.T) {
	// Every exposed transform must be total over the empty string.
	_ = DetectNamingConvention("")
	_ = CheckName("")
	_ = CamelToSnake("")
	_ = PascalToSnake("")
	_ = SnakeToCamel("")
	_ = SnakeToPascal("")
	_ = TitleToSnake("")
	_ = TitleToCamel("")
	_ = TitleToPascal("")
	_ = RemoveNonASCII("")
	_ = RemoveNonAlphabetic("")
	_ = RemoveNonAlphanumeric("")
	_ = RemoveWhitespace("")
	_ = RemoveMultipleWhitespace("")
	_ = RemoveOuterWhitespace("")
	_ = RemoveRoundBrackets("")
	_ = RemoveSquareBrackets("")
	_ = RemoveCurlyBrackets("")
	_ = RemoveAngleBrackets("")
	_ = RemoveWindowsSpecialCharacters("")
	_ = RemoveNonUTF8(nil)
	_ = ReplaceAmpersand("")
	_ = ReplaceDashesWithHyphen("")
	_ = ReplaceAccents("")
	_ = LowercaseMinorWords("")
	_ = CapitalizeAfterSpace("")
	_ = NormalizeNotation("")
}
