// checker.go
// Anomaly predicates and the composed diagnostic check.
package namecleaner

import (
	"context"

	"github.com/baditaflorin/go_name_cleaner/internal/core/check"
	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_name_cleaner/internal/core/scan"
)

// Report holds the outcome of a name check.
type Report = domain.Report

// CheckOption defines a functional option for configuring CheckName.
type CheckOption func(*check.Config)

// WithSeparator sets the word separator expected in checked names. The
// separator is stripped before the non-alphabetic check only. Default " ".
func WithSeparator(sep string) CheckOption {
	return func(cfg *check.Config) {
		cfg.Separator = sep
	}
}

// WithIgnoreChars sets additional characters the non-alphabetic check
// ignores.
func WithIgnoreChars(chars string) CheckOption {
	return func(cfg *check.Config) {
		cfg.IgnoreChars = chars
	}
}

// CheckName runs the ordered anomaly predicates against name and returns
// their labels joined with "; ". A clean name returns the empty string.
//
//	CheckName("  John   Smith  ") // "outer whitespace; multiple whitespace"
//	CheckName("John Smith")       // ""
func CheckName(name string, opts ...CheckOption) string {
	return check.Join(CheckNameReport(name, opts...))
}

// CheckNameReport is like CheckName but returns the full structured report,
// including the detected naming convention.
func CheckNameReport(name string, opts ...CheckOption) Report {
	cfg := check.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	checker, err := check.NewChecker(cfg, nopLogger{})
	if err != nil {
		// Only a malformed separator can fail validation; fall back to the
		// default configuration to keep the function total.
		checker, _ = check.NewChecker(check.DefaultConfig(), nopLogger{})
	}
	return checker.Check(context.Background(), name)
}

// ContainsAcronym reports whether name contains an acronym: two or more
// consecutive uppercase letters, standalone or parenthesized, or a dotted
// initialism such as U.S.A.
func ContainsAcronym(name string) bool {
	return scan.ContainsAcronym(name)
}

// ContainsMultipleWhitespace reports whether name contains two or more
// consecutive whitespace characters.
func ContainsMultipleWhitespace(name string) bool {
	return scan.ContainsMultipleWhitespace(name)
}

// ContainsOuterWhitespace reports whether name has leading or trailing
// whitespace.
func ContainsOuterWhitespace(name string) bool {
	return scan.ContainsOuterWhitespace(name)
}

// ContainsNonASCII reports whether name contains any code point above 127.
func ContainsNonASCII(name string) bool {
	return scan.ContainsNonASCII(name)
}

// ContainsNonAlphabetic reports whether name contains any character that is
// not a Unicode letter, after stripping the characters listed in ignore.
func ContainsNonAlphabetic(name, ignore string) bool {
	return scan.ContainsNonAlphabetic(name, ignore)
}

// ContainsNonAlphanumeric reports whether name contains any character that
// is neither a Unicode letter nor a digit, after stripping the characters
// listed in ignore.
func ContainsNonAlphanumeric(name, ignore string) bool {
	return scan.ContainsNonAlphanumeric(name, ignore)
}

// ContainsBrackets reports whether name contains any round, square, curly or
// angle bracket.
func ContainsBrackets(name string) bool {
	return scan.ContainsBrackets(name)
}

// ContainsPunctuation reports whether name contains any ASCII punctuation
// character.
func ContainsPunctuation(name string) bool {
	return scan.ContainsPunctuation(name)
}

// ContainsUnicodeDash reports whether name contains an en dash, em dash or
// minus sign (distinct code points from the ASCII hyphen-minus).
func ContainsUnicodeDash(name string) bool {
	return scan.ContainsUnicodeDash(name)
}

// ContainsAmpersand reports whether name contains a literal ampersand.
func ContainsAmpersand(name string) bool {
	return scan.ContainsAmpersand(name)
}

// ContainsDigit reports whether name contains an ASCII digit.
func ContainsDigit(name string) bool {
	return scan.ContainsDigit(name)
}

// ContainsNonUTF8 reports whether b is not a valid UTF-8 byte sequence.
func ContainsNonUTF8(b []byte) bool {
	return scan.ContainsNonUTF8(b)
}
