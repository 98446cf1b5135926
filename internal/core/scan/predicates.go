// Package scan provides the independent boolean predicates used to flag
// formatting anomalies in identifier-like names. Every predicate inspects
// only its arguments and is safe for concurrent use.
package scan

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// An acronym is two or more consecutive uppercase letters, standalone
	// or parenthesized, or a dotted initialism such as U.S.A.
	acronymRe = regexp.MustCompile(`\b[A-Z]{2,}\b|\([A-Z]{2,}\)|\b[A-Z](?:\.[A-Z])+\b`)

	multipleWhitespaceRe = regexp.MustCompile(`\s{2,}`)
)

// ASCII punctuation, the fixed class common to shell and markup syntax.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Bracket characters of all four bracket pairs.
const brackets = "()[]{}<>"

// En dash, em dash and minus sign. Distinct code points from the ASCII
// hyphen-minus.
const unicodeDashes = "–—−"

// ContainsAcronym reports whether name contains an acronym.
func ContainsAcronym(name string) bool {
	return acronymRe.MatchString(name)
}

// ContainsMultipleWhitespace reports whether name contains two or more
// consecutive whitespace characters.
func ContainsMultipleWhitespace(name string) bool {
	return multipleWhitespaceRe.MatchString(name)
}

// ContainsOuterWhitespace reports whether name has leading or trailing
// whitespace.
func ContainsOuterWhitespace(name string) bool {
	return name != strings.TrimSpace(name)
}

// ContainsNonASCII reports whether name contains any code point above 127.
func ContainsNonASCII(name string) bool {
	for _, r := range name {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}

// ContainsNonAlphabetic reports whether name contains any character that is
// not a Unicode letter, after stripping the characters listed in ignore.
func ContainsNonAlphabetic(name, ignore string) bool {
	return containsNonCategory(name, ignore, func(r rune) bool {
		return unicode.IsLetter(r)
	})
}

// ContainsNonAlphanumeric reports whether name contains any character that is
// neither a Unicode letter nor a digit, after stripping the characters listed
// in ignore.
func ContainsNonAlphanumeric(name, ignore string) bool {
	return containsNonCategory(name, ignore, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

func containsNonCategory(name, ignore string, ok func(rune) bool) bool {
	for _, r := range name {
		if ignore != "" && strings.ContainsRune(ignore, r) {
			continue
		}
		if !ok(r) {
			return true
		}
	}
	return false
}

// ContainsBrackets reports whether name contains any round, square, curly or
// angle bracket.
func ContainsBrackets(name string) bool {
	return strings.ContainsAny(name, brackets)
}

// ContainsPunctuation reports whether name contains any ASCII punctuation
// character.
func ContainsPunctuation(name string) bool {
	return strings.ContainsAny(name, asciiPunctuation)
}

// ContainsUnicodeDash reports whether name contains an en dash, em dash or
// minus sign.
func ContainsUnicodeDash(name string) bool {
	return strings.ContainsAny(name, unicodeDashes)
}

// ContainsAmpersand reports whether name contains a literal ampersand.
func ContainsAmpersand(name string) bool {
	return strings.ContainsRune(name, '&')
}

// ContainsDigit reports whether name contains an ASCII digit.
func ContainsDigit(name string) bool {
	return strings.ContainsAny(name, "0123456789")
}

// ContainsNonUTF8 reports whether b is not a valid UTF-8 byte sequence.
func ContainsNonUTF8(b []byte) bool {
	return !utf8.Valid(b)
}
