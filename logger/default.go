package logger

import (
	"os"
	"sync"

	"github.com/philipp01105/levelgate/sink/consolesink"
)

var (
	defaultLogger *ThresholdLogger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a console sink on stderr
	s := consolesink.New(consolesink.Config{Writer: os.Stderr})

	defaultLogger = &ThresholdLogger{
		sink:     s,
		level:    InfoLevel,
		original: InfoLevel,
	}
}

// Default returns the default logger
func Default() *ThresholdLogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger is ignored.
func SetDefault(l *ThresholdLogger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Trace logs a trace message using the default logger
func Trace(message any, args ...any) {
	Default().Trace(message, args...)
}

// Debug logs a debug message using the default logger
func Debug(message any, args ...any) {
	Default().Debug(message, args...)
}

// Info logs an info message using the default logger
func Info(message any, args ...any) {
	Default().Info(message, args...)
}

// Warn logs a warning message using the default logger
func Warn(message any, args ...any) {
	Default().Warn(message, args...)
}

// Error logs an error message using the default logger
func Error(message any, args ...any) {
	Default().Error(message, args...)
}
