package ports

import (
	"context"
	"io"
)

// StreamProcessor defines the interface for rewriting a newline-separated
// stream of names.
type StreamProcessor interface {
	// ProcessStream reads names line by line from reader, rewrites each one,
	// and writes the results to writer. It returns the number of names
	// processed.
	ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (int, error)
}
