// detector.go
// Naming-convention detection.
package namecleaner

import (
	"github.com/baditaflorin/go_name_cleaner/internal/core/detect"
	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
)

// Convention labels a whole-string naming shape.
type Convention = domain.Convention

// The recognized naming conventions, in detection order. The patterns
// overlap, so the first match wins. DetectNamingConvention returns
// ConventionUnknown when no pattern matches, including for the empty string.
const (
	ConventionSnake   = domain.ConventionSnake
	ConventionCamel   = domain.ConventionCamel
	ConventionPascal  = domain.ConventionPascal
	ConventionKebab   = domain.ConventionKebab
	ConventionTitle   = domain.ConventionTitle
	ConventionUpper   = domain.ConventionUpper
	ConventionLower   = domain.ConventionLower
	ConventionUnknown = domain.ConventionUnknown
)

// DetectNamingConvention classifies the naming convention of text.
//
//	DetectNamingConvention("user_id")   // ConventionSnake
//	DetectNamingConvention("userId")    // ConventionCamel
//	DetectNamingConvention("UserId")    // ConventionPascal
//	DetectNamingConvention("John Smith") // ConventionTitle
func DetectNamingConvention(text string) Convention {
	return detect.Detect(text)
}
