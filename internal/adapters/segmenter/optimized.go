package segmenter

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_name_cleaner/internal/pool"
	"github.com/baditaflorin/go_name_cleaner/internal/ports"
)

// OptimizedSegmenter implements a single-pass segmentation strategy with
// buffer pooling. It produces the same output as DefaultSegmenter without
// re-scanning the string once per boundary rule.
type OptimizedSegmenter struct {
	builderPool *pool.StringBuilderPool
}

// NewOptimizedSegmenter creates a new optimized segmenter.
func NewOptimizedSegmenter() ports.Segmenter {
	return &OptimizedSegmenter{
		builderPool: pool.NewStringBuilderPool(),
	}
}

// Segment splits text into space-delimited word tokens in a single pass.
func (s *OptimizedSegmenter) Segment(text string) string {
	if len(text) == 0 {
		return ""
	}

	sb := s.builderPool.Get()
	defer s.builderPool.Put(sb)

	runes := []rune(text)
	lastWasSpace := true // suppress leading boundaries

	for i, r := range runes {
		if !isAlnum(r) {
			if !lastWasSpace {
				sb.WriteRune(' ')
				lastWasSpace = true
			}
			continue
		}
		if !lastWasSpace {
			prev := runes[i-1]
			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if isBoundary(prev, r, next) {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune(r)
		lastWasSpace = false
	}

	return strings.TrimSuffix(sb.String(), " ")
}

// isBoundary reports whether a word boundary belongs between prev and curr.
func isBoundary(prev, curr, next rune) bool {
	if unicode.IsUpper(curr) {
		// camelCase boundary: fooBar, foo2Bar
		if unicode.IsLower(prev) || unicode.IsDigit(prev) {
			return true
		}
		// acronym-to-word boundary: HTTPServer
		if unicode.IsUpper(prev) && unicode.IsLower(next) {
			return true
		}
	}
	// digit boundaries: foo2 bar, 2foo
	if unicode.IsDigit(prev) && unicode.IsLetter(curr) {
		return true
	}
	if unicode.IsLetter(prev) && unicode.IsDigit(curr) {
		return true
	}
	return false
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
