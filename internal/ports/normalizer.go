package ports

import "context"

// Normalizer defines the interface for rewriting a name into a target notation.
type Normalizer interface {
	Normalize(ctx context.Context, name string) string
}
