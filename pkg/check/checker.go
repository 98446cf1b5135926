// Package check provides a configurable name checker with structured logging
// and optional warm-up.
package check

import (
	"context"

	"github.com/baditaflorin/go_name_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_name_cleaner/internal/core/check"
	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_name_cleaner/internal/ports"
	"github.com/baditaflorin/go_name_cleaner/internal/warmup"
	"github.com/baditaflorin/l"
)

// Checker runs the ordered anomaly predicates against names.
type Checker struct {
	checker ports.Checker
	logger  ports.Logger
	warmed  bool
}

// Option defines a functional option for configuring a Checker.
type Option func(*config)

type config struct {
	Separator    string
	IgnoreChars  string
	Logger       ports.Logger
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithSeparator sets the word separator expected in checked names. The
// separator is stripped before the non-alphabetic check only.
func WithSeparator(sep string) Option {
	return func(cfg *config) {
		cfg.Separator = sep
	}
}

// WithIgnoreChars sets additional characters the non-alphabetic check
// ignores.
func WithIgnoreChars(chars string) Option {
	return func(cfg *config) {
		cfg.IgnoreChars = chars
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(l)
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

// New creates a new Checker instance.
func New(opts ...Option) (*Checker, error) {
	defaultConfig := check.DefaultConfig()

	cfg := &config{
		Separator:    defaultConfig.Separator,
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

	coreChecker, err := check.NewChecker(check.Config{
		Separator:   cfg.Separator,
		IgnoreChars: cfg.IgnoreChars,
	}, cfg.Logger)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		checker: coreChecker,
		logger:  cfg.Logger,
	}

	if cfg.WarmUp {
		c.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return c, nil
}

// Check runs every predicate against name and returns the structured report.
func (c *Checker) Check(ctx context.Context, name string) domain.Report {
	return c.checker.Check(ctx, name)
}

// CheckString runs every predicate against name and returns the canonical
// diagnostic string: the fired predicate labels joined with "; ", or the
// empty string for a clean name.
func (c *Checker) CheckString(ctx context.Context, name string) string {
	return check.Join(c.checker.Check(ctx, name))
}

// WarmUp performs system warm-up to optimize performance.
func (c *Checker) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if c.warmed {
		c.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(c.logger, config)
	warmupMgr.RegisterChecker(c.checker)

	warmupMgr.WarmUp(ctx)
	c.warmed = true
}
