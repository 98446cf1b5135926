// Package stream processes newline-separated streams of names through a
// normalizer.
package stream

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/baditaflorin/go_name_cleaner/internal/pool"
	"github.com/baditaflorin/go_name_cleaner/internal/ports"
)

// Default buffer sizes for the line scanner.
const (
	DefaultInitialBufferSize = 64 * 1024
	DefaultMaxLineSize       = 1024 * 1024
)

// Processor reads names line by line and writes the rewritten form of each.
// Scanner buffers are pooled across calls.
type Processor struct {
	normalizer ports.Normalizer
	logger     ports.Logger
	buffers    *pool.BufferPool
	maxLine    int
}

// NewProcessor creates a new stream processor around a normalizer.
func NewProcessor(normalizer ports.Normalizer, logger ports.Logger) (*Processor, error) {
	if normalizer == nil {
		return nil, errors.New("normalizer must not be nil")
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	return &Processor{
		normalizer: normalizer,
		logger:     logger,
		buffers:    pool.NewBufferPool(DefaultInitialBufferSize),
		maxLine:    DefaultMaxLineSize,
	}, nil
}

// ProcessStream reads newline-separated names from reader, rewrites each one,
// and writes one result per line to writer. It returns the number of names
// processed and stops early on context cancellation.
func (p *Processor) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer) (int, error) {
	buffer := p.buffers.Get()
	defer p.buffers.Put(buffer)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(*buffer, p.maxLine)

	bw := bufio.NewWriter(writer)
	count := 0

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			p.logger.Error("Stream processing cancelled",
				"error", ctx.Err(),
				"processed", count,
			)
			return count, ctx.Err()
		default:
			// continue
		}

		line := p.normalizer.Normalize(ctx, scanner.Text())
		if _, err := bw.WriteString(line); err != nil {
			return count, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return count, err
		}
		count++
	}

	if err := scanner.Err(); err != nil {
		p.logger.Error("Stream scan failed", "error", err, "processed", count)
		return count, err
	}

	if err := bw.Flush(); err != nil {
		return count, err
	}

	p.logger.Debug("Stream processing completed", "processed", count)
	return count, nil
}
