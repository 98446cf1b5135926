// Package logger adapts the l structured logger to the ports.Logger
// interface used throughout the rewriting pipeline.
package logger

import (
	"os"

	"github.com/baditaflorin/go_name_cleaner/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger wraps an l.Logger behind the ports.Logger interface.
type StdLogger struct {
	inner l.Logger
}

// DefaultConfig returns the logger configuration the package facades use when
// no logger is supplied: plain-text async output on stdout.
func DefaultConfig() l.Config {
	return l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	}
}

// NewStdLogger creates a logger adapter with the default configuration.
func NewStdLogger() (ports.Logger, error) {
	return NewCustomStdLogger(DefaultConfig())
}

// NewCustomStdLogger creates a logger adapter from an explicit configuration.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	inner, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}
	return &StdLogger{inner: inner}, nil
}

// FromExisting wraps an already-constructed l.Logger. The caller keeps
// ownership: closing the adapter closes the wrapped logger.
func FromExisting(inner l.Logger) ports.Logger {
	return &StdLogger{inner: inner}
}

func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.inner.Debug(msg, keysAndValues...)
}

func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.inner.Info(msg, keysAndValues...)
}

func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.inner.Warn(msg, keysAndValues...)
}

func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.inner.Error(msg, keysAndValues...)
}

// Close flushes and closes the underlying logger.
func (s *StdLogger) Close() error {
	return s.inner.Close()
}
