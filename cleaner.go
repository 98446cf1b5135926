// cleaner.go
// Single-purpose character filters and replacement tables.
package namecleaner

import "github.com/baditaflorin/go_name_cleaner/internal/core/clean"

// RemoveNonASCII removes every code point above 127.
func RemoveNonASCII(name string) string {
	return clean.RemoveNonASCII(name)
}

// RemoveNonAlphabetic removes every character that is neither a Unicode
// letter nor whitespace.
func RemoveNonAlphabetic(name string) string {
	return clean.RemoveNonAlphabetic(name)
}

// RemoveNonAlphanumeric removes every character that is neither a Unicode
// letter, a digit, nor whitespace.
func RemoveNonAlphanumeric(name string) string {
	return clean.RemoveNonAlphanumeric(name)
}

// RemoveWhitespace removes every whitespace character.
func RemoveWhitespace(name string) string {
	return clean.RemoveWhitespace(name)
}

// RemoveMultipleWhitespace collapses runs of two or more whitespace
// characters into a single space.
func RemoveMultipleWhitespace(name string) string {
	return clean.RemoveMultipleWhitespace(name)
}

// RemoveOuterWhitespace removes leading and trailing whitespace.
func RemoveOuterWhitespace(name string) string {
	return clean.RemoveOuterWhitespace(name)
}

// RemoveRoundBrackets removes the characters ( and ).
func RemoveRoundBrackets(name string) string {
	return clean.RemoveRoundBrackets(name)
}

// RemoveSquareBrackets removes the characters [ and ].
func RemoveSquareBrackets(name string) string {
	return clean.RemoveSquareBrackets(name)
}

// RemoveCurlyBrackets removes the characters { and }.
func RemoveCurlyBrackets(name string) string {
	return clean.RemoveCurlyBrackets(name)
}

// RemoveAngleBrackets removes the characters < and >.
func RemoveAngleBrackets(name string) string {
	return clean.RemoveAngleBrackets(name)
}

// RemoveWindowsSpecialCharacters removes the characters that are invalid in
// Windows file names: < > : " / \ | ? *
func RemoveWindowsSpecialCharacters(name string) string {
	return clean.RemoveWindowsSpecialCharacters(name)
}

// RemoveNonUTF8 drops every byte that is not part of a valid UTF-8 sequence.
// Invalid input is never a fatal error.
func RemoveNonUTF8(b []byte) []byte {
	return clean.RemoveNonUTF8(b)
}

// ReplaceAmpersand replaces every literal & with the word "and".
func ReplaceAmpersand(name string) string {
	return clean.ReplaceAmpersand(name)
}

// ReplaceDashesWithHyphen replaces en dashes, em dashes and minus signs with
// the ASCII hyphen-minus.
func ReplaceDashesWithHyphen(name string) string {
	return clean.ReplaceDashesWithHyphen(name)
}

// ReplaceAccents replaces accented Latin letters with their unaccented base
// letters.
//
//	ReplaceAccents("café") // "cafe"
func ReplaceAccents(name string) string {
	return clean.ReplaceAccents(name)
}

// LowercaseMinorWords lowercases short English function words (articles,
// prepositions, conjunctions) in a space-delimited title, leaving the first
// word untouched.
func LowercaseMinorWords(name string) string {
	return clean.LowercaseMinorWords(name)
}

// CapitalizeAfterSpace upper-cases the first letter of every space-delimited
// word, leaving the rest of each word untouched.
func CapitalizeAfterSpace(name string) string {
	return clean.CapitalizeAfterSpace(name)
}
