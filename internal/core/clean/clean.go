// Package clean provides single-purpose character filters and replacement
// tables for identifier-like names. Every function is total and idempotent:
// running a filter on its own output returns the output unchanged.
package clean

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var multipleWhitespaceRe = regexp.MustCompile(`\s{2,}`)

var (
	roundBracketReplacer  = strings.NewReplacer("(", "", ")", "")
	squareBracketReplacer = strings.NewReplacer("[", "", "]", "")
	curlyBracketReplacer  = strings.NewReplacer("{", "", "}", "")
	angleBracketReplacer  = strings.NewReplacer("<", "", ">", "")

	// Characters that are invalid in Windows file names.
	windowsSpecialReplacer = strings.NewReplacer(
		"<", "", ">", "", ":", "", "\"", "", "/", "", "\\", "", "|", "", "?", "", "*", "",
	)

	dashReplacer = strings.NewReplacer("–", "-", "—", "-", "−", "-")
)

// RemoveNonASCII removes every code point above 127.
func RemoveNonASCII(name string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, name)
}

// RemoveNonAlphabetic removes every character that is neither a Unicode
// letter nor whitespace.
func RemoveNonAlphabetic(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, name)
}

// RemoveNonAlphanumeric removes every character that is neither a Unicode
// letter, a digit, nor whitespace.
func RemoveNonAlphanumeric(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, name)
}

// RemoveWhitespace removes every whitespace character.
func RemoveWhitespace(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

// RemoveMultipleWhitespace collapses every run of two or more whitespace
// characters into a single space.
func RemoveMultipleWhitespace(name string) string {
	return multipleWhitespaceRe.ReplaceAllString(name, " ")
}

// RemoveOuterWhitespace removes leading and trailing whitespace.
func RemoveOuterWhitespace(name string) string {
	return strings.TrimSpace(name)
}

// RemoveRoundBrackets removes the characters ( and ).
func RemoveRoundBrackets(name string) string {
	return roundBracketReplacer.Replace(name)
}

// RemoveSquareBrackets removes the characters [ and ].
func RemoveSquareBrackets(name string) string {
	return squareBracketReplacer.Replace(name)
}

// RemoveCurlyBrackets removes the characters { and }.
func RemoveCurlyBrackets(name string) string {
	return curlyBracketReplacer.Replace(name)
}

// RemoveAngleBrackets removes the characters < and >.
func RemoveAngleBrackets(name string) string {
	return angleBracketReplacer.Replace(name)
}

// RemoveWindowsSpecialCharacters removes the characters that are invalid in
// Windows file names.
func RemoveWindowsSpecialCharacters(name string) string {
	return windowsSpecialReplacer.Replace(name)
}

// RemoveNonUTF8 drops every byte that is not part of a valid UTF-8 sequence.
// Invalid input is never a fatal error.
func RemoveNonUTF8(b []byte) []byte {
	return bytes.ToValidUTF8(b, nil)
}

// ReplaceAmpersand replaces every literal & with the word "and".
func ReplaceAmpersand(name string) string {
	return strings.ReplaceAll(name, "&", "and")
}

// ReplaceDashesWithHyphen replaces en dashes, em dashes and minus signs with
// the ASCII hyphen-minus.
func ReplaceDashesWithHyphen(name string) string {
	return dashReplacer.Replace(name)
}

// ReplaceAccents replaces accented Latin letters with their unaccented base
// letters by decomposing to NFD, dropping combining marks, and recomposing.
// On a transform failure the input is returned unchanged.
func ReplaceAccents(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return folded
}
