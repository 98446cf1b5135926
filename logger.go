// logger.go
// Logging support for the package-level pure functions.
package namecleaner

import "github.com/baditaflorin/go_name_cleaner/internal/ports"

// nopLogger backs the package-level pure functions, which by contract do no
// I/O of their own. The pkg/check, pkg/notation and pkg/stream facades accept
// a real logger instead.
type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Close() error                                   { return nil }

var _ ports.Logger = nopLogger{}
