package domain

// Convention labels a whole-string naming shape.
type Convention string

const (
	ConventionSnake   Convention = "snake_case"
	ConventionCamel   Convention = "camelCase"
	ConventionPascal  Convention = "PascalCase"
	ConventionKebab   Convention = "kebab-case"
	ConventionTitle   Convention = "Title Case"
	ConventionUpper   Convention = "UPPER_CASE"
	ConventionLower   Convention = "lowercase"
	ConventionUnknown Convention = "unknown"
)

// Notation is a named preset that fixes both the case policy and the
// delimiter of a normalization target.
type Notation string

const (
	NotationDefault Notation = "default"
	NotationSnake   Notation = "snake"
	NotationCamel   Notation = "camel"
	NotationPascal  Notation = "pascal"
	NotationTitle   Notation = "title"
)

// Case is the casing policy applied to the segmented token sequence.
type Case string

const (
	CaseDefault    Case = "default"
	CaseLower      Case = "lower"
	CaseUpper      Case = "upper"
	CaseTitle      Case = "title"
	CaseCapitalize Case = "capitalize"
)

// Report holds the outcome of a name check.
type Report struct {
	// Name of the check.
	Name string
	// Issues lists the labels of every predicate that fired, in evaluation order.
	Issues []string
	// Clean indicates that no predicate fired.
	Clean bool
	// Convention is the detected naming convention of the input.
	Convention Convention
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
