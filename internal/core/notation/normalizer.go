// Package notation implements the multi-stage rewrite pipeline that
// re-segments an identifier into words and reassembles it under a target
// case and delimiter policy.
package notation

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_name_cleaner/internal/ports"
)

// DefaultDelimiter joins tokens when no preset or custom delimiter applies.
const DefaultDelimiter = " "

// Config holds configuration for the notation normalizer.
type Config struct {
	// Notation is a named preset. A preset other than NotationDefault
	// overrides Case and Delimiter.
	Notation domain.Notation
	// Case is the casing policy applied to the token sequence.
	Case domain.Case
	// Delimiter joins the tokens of the output.
	Delimiter string
	// PreserveCase skips the casing stage entirely.
	PreserveCase bool
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Notation:  domain.NotationDefault,
		Case:      domain.CaseDefault,
		Delimiter: DefaultDelimiter,
	}
}

// Normalizer rewrites identifiers into a configured target notation.
type Normalizer struct {
	config    Config
	logger    ports.Logger
	segmenter ports.Segmenter
}

// NewNormalizer creates a new notation normalizer.
func NewNormalizer(config Config, logger ports.Logger, segmenter ports.Segmenter) (*Normalizer, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	if segmenter == nil {
		return nil, errors.New("segmenter must not be nil")
	}
	return &Normalizer{
		config:    config,
		logger:    logger,
		segmenter: segmenter,
	}, nil
}

// Normalize rewrites name into the configured notation. It never fails:
// empty input and input without letters or digits produce the empty string,
// and unrecognized notation or case values behave like their defaults.
func (n *Normalizer) Normalize(ctx context.Context, name string) string {
	if name == "" {
		return ""
	}

	select {
	case <-ctx.Done():
		n.logger.Error("Normalization cancelled", "error", ctx.Err())
		return ""
	default:
		// continue
	}

	n.logger.Debug("Starting notation normalization",
		"name", name,
		"notation", n.config.Notation,
	)

	// Stage 1: segmentation into space-delimited tokens.
	tokens := n.segmenter.Segment(name)
	if tokens == "" {
		return ""
	}

	// Stage 2: preset resolution.
	casePolicy, delimiter := n.resolvePreset()

	// Stage 3: case policy.
	if !n.config.PreserveCase {
		tokens = applyCase(tokens, casePolicy)
	}

	// Stage 4: delimiter policy.
	if delimiter != DefaultDelimiter {
		tokens = strings.ReplaceAll(tokens, DefaultDelimiter, delimiter)
	}

	// Stage 5: camelCase fix-up on the joined result.
	if n.config.Notation == domain.NotationCamel {
		tokens = lowerFirst(tokens)
	}

	n.logger.Debug("Completed notation normalization",
		"name", name,
		"result", tokens,
	)

	return tokens
}

// resolvePreset maps a named notation preset onto its case and delimiter.
// NotationDefault and unrecognized values leave the configured case and
// delimiter untouched.
func (n *Normalizer) resolvePreset() (domain.Case, string) {
	switch n.config.Notation {
	case domain.NotationSnake:
		return domain.CaseLower, "_"
	case domain.NotationCamel, domain.NotationPascal:
		return domain.CaseTitle, ""
	case domain.NotationTitle:
		return domain.CaseTitle, DefaultDelimiter
	}
	return n.config.Case, n.config.Delimiter
}

// applyCase applies the casing policy to the space-delimited token sequence.
func applyCase(tokens string, casePolicy domain.Case) string {
	switch casePolicy {
	case domain.CaseLower:
		return strings.ToLower(tokens)
	case domain.CaseUpper:
		return strings.ToUpper(tokens)
	case domain.CaseTitle:
		words := strings.Split(tokens, " ")
		for i, word := range words {
			words[i] = titleWord(word)
		}
		return strings.Join(words, " ")
	case domain.CaseCapitalize:
		return upperFirst(strings.ToLower(tokens))
	}
	return applyDefaultCase(tokens)
}

// applyDefaultCase lowercases an all-uppercase sequence wholesale; otherwise
// it lowercases only the tokens that are in title-case shape, leaving any
// other token untouched so that acronyms typed in full caps survive.
func applyDefaultCase(tokens string) string {
	if tokens == strings.ToUpper(tokens) {
		return strings.ToLower(tokens)
	}
	words := strings.Split(tokens, " ")
	for i, word := range words {
		if word == titleWord(word) {
			words[i] = strings.ToLower(word)
		}
	}
	return strings.Join(words, " ")
}

// titleWord puts a single token into title-case shape.
func titleWord(word string) string {
	return upperFirst(strings.ToLower(word))
}

func upperFirst(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r)) + s[len(string(r)):]
	}
	return s
}

func lowerFirst(s string) string {
	for _, r := range s {
		return string(unicode.ToLower(r)) + s[len(string(r)):]
	}
	return s
}
