package clean

import (
	"strings"
	"unicode"
)

// minorWords is the fixed set of short English function words that stay
// lowercase in Title Case output. The first word of a title is always exempt.
var minorWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "or": {}, "nor": {},
	"for": {}, "so": {}, "yet": {},
	"as": {}, "at": {}, "by": {}, "if": {},
	"in": {}, "of": {}, "off": {}, "on": {},
	"per": {}, "to": {}, "up": {}, "via": {}, "vs": {},
}

// LowercaseMinorWords lowercases every minor word in a space-delimited title,
// leaving the first word and all major words untouched.
func LowercaseMinorWords(name string) string {
	words := strings.Split(name, " ")
	for i, word := range words {
		if i == 0 {
			continue
		}
		if _, ok := minorWords[strings.ToLower(word)]; ok {
			words[i] = strings.ToLower(word)
		}
	}
	return strings.Join(words, " ")
}

// CapitalizeAfterSpace upper-cases the first letter of every space-delimited
// word, leaving the rest of each word untouched.
func CapitalizeAfterSpace(name string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		if prev == ' ' {
			prev = r
			return unicode.ToUpper(r)
		}
		prev = r
		return r
	}, name)
}
