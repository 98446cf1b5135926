// Package detect classifies whole-string naming conventions.
package detect

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_name_cleaner/internal/ports"
)

// The structural patterns overlap, so they are evaluated in a fixed order
// and the first match wins. A single uppercase letter must classify as
// UPPER_CASE, so the camel/Pascal runs require a lowercase tail.
var (
	snakeRe  = regexp.MustCompile(`^[a-z0-9]+(?:_[a-z0-9]+)+$`)
	camelRe  = regexp.MustCompile(`^[a-z][a-z0-9]*(?:[A-Z][a-z0-9]+)+$`)
	pascalRe = regexp.MustCompile(`^(?:[A-Z][a-z0-9]+)+$`)
	kebabRe  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)+$`)
	upperRe  = regexp.MustCompile(`^[A-Z0-9]+(?:_[A-Z0-9]+)*$`)
	lowerRe  = regexp.MustCompile(`^[a-z0-9]+$`)
)

// Detector classifies strings against the ordered convention patterns.
type Detector struct{}

// NewDetector creates a new convention detector.
func NewDetector() ports.Detector {
	return &Detector{}
}

// Detect returns the naming convention of text, or ConventionUnknown when no
// pattern matches. The empty string never matches a structural pattern.
func (d *Detector) Detect(text string) domain.Convention {
	return Detect(text)
}

// Detect classifies the naming convention of text.
func Detect(text string) domain.Convention {
	if text == "" {
		return domain.ConventionUnknown
	}
	switch {
	case snakeRe.MatchString(text):
		return domain.ConventionSnake
	case camelRe.MatchString(text):
		return domain.ConventionCamel
	case pascalRe.MatchString(text):
		return domain.ConventionPascal
	case kebabRe.MatchString(text):
		return domain.ConventionKebab
	case len(text) > 1 && isTitleStable(text):
		return domain.ConventionTitle
	case upperRe.MatchString(text):
		return domain.ConventionUpper
	case lowerRe.MatchString(text):
		return domain.ConventionLower
	}
	return domain.ConventionUnknown
}

// isTitleStable reports whether text equals its own title-cased transform.
// This is a semantic self-equality test rather than a structural pattern, so
// it also matches border cases such as a single capitalized word. Single
// characters are excluded by the caller so that a lone uppercase letter
// classifies as UPPER_CASE.
func isTitleStable(text string) bool {
	return text == cases.Title(language.English).String(text)
}
