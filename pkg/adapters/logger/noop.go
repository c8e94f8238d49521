package logger

import "github.com/user/memegen/pkg/ports"

// NoopLogger drops every message. The CLI uses it for --quiet and a quiet
// log_level; tests pass it to stages and the orchestrator.
type NoopLogger struct{}

var _ ports.Logger = (*NoopLogger)(nil)

// NewNoop returns a NoopLogger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(msg string, args ...any) {}
func (l *NoopLogger) Info(msg string, args ...any)  {}
func (l *NoopLogger) Warn(msg string, args ...any)  {}
func (l *NoopLogger) Error(msg string, args ...any) {}

// WithComponent returns l; a silent logger has no prefix to add.
func (l *NoopLogger) WithComponent(component string) ports.Logger {
	return l
}
