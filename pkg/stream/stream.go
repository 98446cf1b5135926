// Package stream rewrites newline-separated streams of names through a
// configurable notation normalizer.
package stream

import (
	"context"
	"io"

	"github.com/baditaflorin/go_name_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_name_cleaner/internal/adapters/stream"
	"github.com/baditaflorin/go_name_cleaner/internal/ports"
	"github.com/baditaflorin/go_name_cleaner/pkg/notation"
	"github.com/baditaflorin/l"
)

// Rewriter processes a stream of names line by line.
type Rewriter struct {
	processor ports.StreamProcessor
	logger    ports.Logger
}

// Option defines a functional option for configuring a Rewriter.
type Option func(*config)

type config struct {
	Logger            ports.Logger
	NormalizerOptions []notation.Option
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithNormalizerOptions configures the notation normalizer every line is
// rewritten with.
func WithNormalizerOptions(opts ...notation.Option) Option {
	return func(cfg *config) {
		cfg.NormalizerOptions = append(cfg.NormalizerOptions, opts...)
	}
}

// New creates a new stream Rewriter.
func New(opts ...Option) (*Rewriter, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	normalizer, err := notation.New(cfg.NormalizerOptions...)
	if err != nil {
		return nil, err
	}

	processor, err := stream.NewProcessor(normalizer, cfg.Logger)
	if err != nil {
		return nil, err
	}

	return &Rewriter{
		processor: processor,
		logger:    cfg.Logger,
	}, nil
}

// Process reads newline-separated names from reader, rewrites each one, and
// writes one result per line to writer. It returns the number of names
// processed.
func (r *Rewriter) Process(ctx context.Context, reader io.Reader, writer io.Writer) (int, error) {
	return r.processor.ProcessStream(ctx, reader, writer)
}
