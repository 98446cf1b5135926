// Package namecleaner classifies and normalizes identifier-like names such
// as file names, field names and labels.
//
// The package detects naming conventions (snake_case, camelCase, PascalCase,
// kebab-case, Title Case, UPPER_CASE, lowercase), flags formatting anomalies
// (acronyms, whitespace irregularities, non-ASCII content, brackets,
// punctuation, unusual dashes, ampersands, digits), and rewrites strings into
// a target notation or cleans them of unwanted characters.
//
// Every function in this package is a pure transform over its arguments:
// there is no shared state, no I/O, and no function raises for any string
// input. All functions are safe for concurrent use.
//
// The root package offers plain functions with sensible defaults. The
// pkg/check, pkg/notation and pkg/stream packages expose configurable
// instances with structured logging, an optimized segmentation path and
// optional warm-up, following the functional options pattern.
package namecleaner
