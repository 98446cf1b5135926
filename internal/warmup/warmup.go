// Package warmup exercises the rewriting components before serving traffic so
// that regex state, buffer pools and the garbage collector reach a steady
// state.
package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_name_cleaner/internal/ports"
)

// WarmupConfig defines configuration for warming up the system.
type WarmupConfig struct {
	// Number of concurrent warmup routines to run.
	Concurrency int
	// Number of iterations per routine.
	Iterations int
	// Warmup duration (0 means no time limit).
	Duration time.Duration
	// Whether to perform GC after warmup.
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration.
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations.
type Manager struct {
	logger      ports.Logger
	segmenters  []ports.Segmenter
	checkers    []ports.Checker
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterSegmenter adds a segmenter to be warmed up.
func (wm *Manager) RegisterSegmenter(seg ports.Segmenter) {
	wm.segmenters = append(wm.segmenters, seg)
}

// RegisterChecker adds a checker to be warmed up.
func (wm *Manager) RegisterChecker(chk ports.Checker) {
	wm.checkers = append(wm.checkers, chk)
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.segmenters)+len(wm.checkers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	samples := sampleNames()

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
					// continue
				}

				name := samples[j%len(samples)]
				for _, seg := range wm.segmenters {
					_ = seg.Segment(name)
				}
				for _, chk := range wm.checkers {
					_ = chk.Check(warmupCtx, name)
				}
				for _, norm := range wm.normalizers {
					_ = norm.Normalize(warmupCtx, name)
				}
			}
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// sampleNames returns identifier-shaped samples covering every boundary rule
// the segmenter and predicates exercise.
func sampleNames() []string {
	base := []string{
		"simpleName",
		"HTTPServerName",
		"snake_case_identifier",
		"kebab-case-identifier",
		"Title Case Label",
		"UPPER_CASE_CONST",
		"mixed 2Fast 4You",
		"  padded   whitespace  ",
		"file (copy) [2]",
		"NASA launch U.S.A",
		"Café & Crème — déjà vu",
	}
	// Add a long composite to exercise buffer growth.
	long := strings.Repeat("LongCompositeIdentifierPart_", 16)
	return append(base, long)
}
