// Package convert provides one-shot converters between the common naming
// conventions. Every converter is total over arbitrary input and returns its
// argument unchanged when the argument already matches the target convention.
package convert

import (
	"strings"
	"unicode"
)

// CamelToSnake converts camelCase (or PascalCase) to snake_case by inserting
// an underscore before every non-leading uppercase letter and lowering the
// result. Consecutive uppercase letters each receive their own underscore;
// use the notation normalizer for acronym-aware splitting.
func CamelToSnake(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + len(name)/2)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// PascalToSnake converts PascalCase to snake_case.
func PascalToSnake(name string) string {
	return CamelToSnake(name)
}

// SnakeToCamel converts snake_case to camelCase.
func SnakeToCamel(name string) string {
	words := strings.Split(name, "_")
	var sb strings.Builder
	sb.Grow(len(name))
	sb.WriteString(lowerFirst(words[0]))
	for _, word := range words[1:] {
		sb.WriteString(upperFirst(word))
	}
	return sb.String()
}

// SnakeToPascal converts snake_case to PascalCase.
func SnakeToPascal(name string) string {
	words := strings.Split(name, "_")
	var sb strings.Builder
	sb.Grow(len(name))
	for _, word := range words {
		sb.WriteString(upperFirst(word))
	}
	return sb.String()
}

// TitleToSnake converts space-delimited Title Case to snake_case.
func TitleToSnake(name string) string {
	words := strings.Split(name, " ")
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// TitleToCamel converts space-delimited Title Case to camelCase.
func TitleToCamel(name string) string {
	words := strings.Split(name, " ")
	var sb strings.Builder
	sb.Grow(len(name))
	sb.WriteString(lowerFirst(words[0]))
	for _, word := range words[1:] {
		sb.WriteString(upperFirst(word))
	}
	return sb.String()
}

// TitleToPascal converts space-delimited Title Case to PascalCase.
func TitleToPascal(name string) string {
	words := strings.Split(name, " ")
	var sb strings.Builder
	sb.Grow(len(name))
	for _, word := range words {
		sb.WriteString(upperFirst(word))
	}
	return sb.String()
}

// upperFirst upper-cases the first rune of word and leaves the rest
// untouched, so re-converting already-cased words is a no-op.
func upperFirst(word string) string {
	for _, r := range word {
		upper := unicode.ToUpper(r)
		if upper == r {
			return word
		}
		return string(upper) + word[len(string(r)):]
	}
	return word
}

// lowerFirst lower-cases the first rune of word and leaves the rest
// untouched.
func lowerFirst(word string) string {
	for _, r := range word {
		lower := unicode.ToLower(r)
		if lower == r {
			return word
		}
		return string(lower) + word[len(string(r)):]
	}
	return word
}
