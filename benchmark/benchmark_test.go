package benchmark

import (
	"context"
	"testing"

	namecleaner "github.com/baditaflorin/go_name_cleaner"
	"github.com/baditaflorin/go_name_cleaner/internal/adapters/segmenter"
	"github.com/baditaflorin/go_name_cleaner/internal/core/check"
	"github.com/baditaflorin/go_name_cleaner/internal/core/domain"
)

var benchNames = []string{
	"simpleName",
	"HTTPServerName",
	"snake_case_identifier_with_many_words",
	"Title Case Label With Several Words",
	"mixed2Fast4You (copy) [final]",
	"UPPER_CASE_CONSTANT_NAME",
}

func BenchmarkDefaultSegmenter(b *testing.B) {
	seg := segmenter.NewDefaultSegmenter()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seg.Segment(benchNames[i%len(benchNames)])
	}
}

func BenchmarkOptimizedSegmenter(b *testing.B) {
	seg := segmenter.NewOptimizedSegmenter()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seg.Segment(benchNames[i%len(benchNames)])
	}
}

func BenchmarkNormalizeNotationSnake(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = namecleaner.NormalizeNotation(benchNames[i%len(benchNames)],
			namecleaner.WithNotation(domain.NotationSnake))
	}
}

func BenchmarkCheckName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = namecleaner.CheckName(benchNames[i%len(benchNames)])
	}
}

func BenchmarkCheckerReport(b *testing.B) {
	checker, err := check.NewChecker(check.DefaultConfig(), nopLogger{})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = checker.Check(ctx, benchNames[i%len(benchNames)])
	}
}

func BenchmarkDetectNamingConvention(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = namecleaner.DetectNamingConvention(benchNames[i%len(benchNames)])
	}
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Close() error                                   { return nil }
