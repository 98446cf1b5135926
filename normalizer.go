// normalizer.go
// The notation normalization pipeline: segment an arbitrary identifier into
// words, then reassemble the words under a target case and delimiter policy.
package namecleaner

import (
	"context"

	"github.com/baditaflorin/go_name_cleaner/internal/adapters/segmenter"
	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_name_cleaner/internal/core/notation"
)

// Notation is a named preset that fixes both the case policy and the
// delimiter of the normalization target.
type Notation = domain.Notation

const (
	NotationDefault = domain.NotationDefault
	NotationSnake   = domain.NotationSnake
	NotationCamel   = domain.NotationCamel
	NotationPascal  = domain.NotationPascal
	NotationTitle   = domain.NotationTitle
)

// Case is the casing policy applied to the segmented token sequence.
type Case = domain.Case

const (
	CaseDefault    = domain.CaseDefault
	CaseLower      = domain.CaseLower
	CaseUpper      = domain.CaseUpper
	CaseTitle      = domain.CaseTitle
	CaseCapitalize = domain.CaseCapitalize
)

// NotationOption defines a functional option for configuring
// NormalizeNotation.
type NotationOption func(*notation.Config)

// WithNotation sets a named notation preset. A preset other than
// NotationDefault overrides the case and delimiter options.
func WithNotation(n Notation) NotationOption {
	return func(cfg *notation.Config) {
		cfg.Notation = n
	}
}

// WithCase sets the casing policy.
func WithCase(c Case) NotationOption {
	return func(cfg *notation.Config) {
		cfg.Case = c
	}
}

// WithDelimiter sets the string that joins the output tokens. Default " ".
func WithDelimiter(delimiter string) NotationOption {
	return func(cfg *notation.Config) {
		cfg.Delimiter = delimiter
	}
}

// WithPreserveCase skips the casing stage entirely, keeping every token
// exactly as segmented.
func WithPreserveCase() NotationOption {
	return func(cfg *notation.Config) {
		cfg.PreserveCase = true
	}
}

// defaultSegmenter backs the package-level NormalizeNotation.
var defaultSegmenter = segmenter.NewDefaultSegmenter()

// NormalizeNotation rewrites name into a target notation. The identifier is
// first segmented into words using camelCase, acronym, digit and delimiter
// boundaries, then reassembled under the requested case and delimiter
// policy. It never fails: empty input and input without letters or digits
// produce the empty string, and unrecognized notation or case values behave
// like their defaults.
//
//	NormalizeNotation("HTTPServerName", WithNotation(NotationSnake)) // "http_server_name"
//	NormalizeNotation("my cool id", WithNotation(NotationPascal))    // "MyCoolId"
//	NormalizeNotation("my cool id", WithNotation(NotationCamel))     // "myCoolId"
func NormalizeNotation(name string, opts ...NotationOption) string {
	cfg := notation.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	norm, err := notation.NewNormalizer(cfg, nopLogger{}, defaultSegmenter)
	if err != nil {
		// Unreachable: logger and segmenter are always supplied.
		return name
	}
	return norm.Normalize(context.Background(), name)
}
