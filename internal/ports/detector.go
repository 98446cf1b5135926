package ports

import "github.com/baditaflorin/go_name_cleaner/internal/core/domain"

// Detector defines the interface for classifying the naming convention
// of a string.
type Detector interface {
	Detect(text string) domain.Convention
}
