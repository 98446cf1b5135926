// Package notation provides a configurable notation normalizer with
// structured logging, an optional optimized segmentation path and optional
// warm-up.
package notation

import (
	"context"

	"github.com/baditaflorin/go_name_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_name_cleaner/internal/adapters/segmenter"
	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_name_cleaner/internal/core/notation"
	"github.com/baditaflorin/go_name_cleaner/internal/ports"
	"github.com/baditaflorin/go_name_cleaner/internal/warmup"
	"github.com/baditaflorin/l"
)

// Normalizer rewrites identifiers into a configured target notation.
type Normalizer struct {
	normalizer ports.Normalizer
	segmenter  ports.Segmenter
	logger     ports.Logger
	warmed     bool
}

// Option defines a functional option for configuring a Normalizer.
type Option func(*config)

type config struct {
	Notation     domain.Notation
	Case         domain.Case
	Delimiter    string
	PreserveCase bool
	Logger       ports.Logger
	Segmenter    ports.Segmenter
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithNotation sets a named notation preset. A preset other than
// NotationDefault overrides the case and delimiter options.
func WithNotation(n domain.Notation) Option {
	return func(cfg *config) {
		cfg.Notation = n
	}
}

// WithCase sets the casing policy.
func WithCase(c domain.Case) Option {
	return func(cfg *config) {
		cfg.Case = c
	}
}

// WithDelimiter sets the string that joins the output tokens.
func WithDelimiter(delimiter string) Option {
	return func(cfg *config) {
		cfg.Delimiter = delimiter
	}
}

// WithPreserveCase skips the casing stage entirely.
func WithPreserveCase() Option {
	return func(cfg *config) {
		cfg.PreserveCase = true
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithSegmenter sets a custom segmenter.
func WithSegmenter(seg ports.Segmenter) Option {
	return func(cfg *config) {
		cfg.Segmenter = seg
	}
}

// WithOptimizedSegmenter sets the single-pass pooled segmenter.
func WithOptimizedSegmenter() Option {
	return func(cfg *config) {
		segFactory := segmenter.NewSegmenterFactory()
		cfg.Segmenter = segFactory.CreateSegmenter(segmenter.OptimizedSegmenterType)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new Normalizer instance.
func New(opts ...Option) (*Normalizer, error) {
	defaultConfig := notation.DefaultConfig()

	cfg := &config{
		Notation:     defaultConfig.Notation,
		Case:         defaultConfig.Case,
		Delimiter:    defaultConfig.Delimiter,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
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

	if cfg.Segmenter == nil {
		cfg.Segmenter = segmenter.NewDefaultSegmenter()
	}

	coreNormalizer, err := notation.NewNormalizer(notation.Config{
		Notation:     cfg.Notation,
		Case:         cfg.Case,
		Delimiter:    cfg.Delimiter,
		PreserveCase: cfg.PreserveCase,
	}, cfg.Logger, cfg.Segmenter)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{
		normalizer: coreNormalizer,
		segmenter:  cfg.Segmenter,
		logger:     cfg.Logger,
	}

	if cfg.WarmUp {
		n.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return n, nil
}

// Normalize rewrites name into the configured notation.
func (n *Normalizer) Normalize(ctx context.Context, name string) string {
	return n.normalizer.Normalize(ctx, name)
}

// WarmUp performs system warm-up to optimize performance.
func (n *Normalizer) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if n.warmed {
		n.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(n.logger, config)
	warmupMgr.RegisterNormalizer(n.normalizer)
	warmupMgr.RegisterSegmenter(n.segmenter)

	warmupMgr.WarmUp(ctx)
	n.warmed = true
}
