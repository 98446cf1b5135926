// Package segmenter provides implementations of the word-boundary
// segmentation stage of the notation normalizer. A segmenter rewrites an
// arbitrary identifier into a space-delimited sequence of word tokens.
package segmenter

import (
	"regexp"
	"strings"

	"github.com/baditaflorin/go_name_cleaner/internal/ports"
)

// The substitutions run in a fixed order and each one re-scans the full
// string. Their combined effect: camelCase boundaries, acronym-to-word
// boundaries (HTTPServer -> HTTP Server), digit boundaries, and every
// delimiter or other non-alphanumeric character become single spaces.
var (
	camelBoundaryRe   = regexp.MustCompile(`([\p{Ll}\p{Nd}])(\p{Lu})`)
	acronymBoundaryRe = regexp.MustCompile(`(\p{Lu})(\p{Lu}\p{Ll})`)
	digitToLetterRe   = regexp.MustCompile(`(\p{Nd})(\p{L})`)
	letterToDigitRe   = regexp.MustCompile(`(\p{L})(\p{Nd})`)
	nonAlnumRe        = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

// DefaultSegmenter implements the default regex-based segmentation strategy.
type DefaultSegmenter struct{}

// NewDefaultSegmenter creates a new default segmenter.
func NewDefaultSegmenter() ports.Segmenter {
	return &DefaultSegmenter{}
}

// Segment splits text into space-delimited word tokens. Input without any
// letters or digits collapses to the empty string.
func (s *DefaultSegmenter) Segment(text string) string {
	if text == "" {
		return ""
	}
	text = camelBoundaryRe.ReplaceAllString(text, "$1 $2")
	text = acronymBoundaryRe.ReplaceAllString(text, "$1 $2")
	text = digitToLetterRe.ReplaceAllString(text, "$1 $2")
	text = letterToDigitRe.ReplaceAllString(text, "$1 $2")
	text = nonAlnumRe.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
