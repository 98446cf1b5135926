package ports

import (
	"context"

	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
)

// Checker defines the interface for running the diagnostic predicates
// against a name.
type Checker interface {
	Check(ctx context.Context, name string) domain.Report
}
