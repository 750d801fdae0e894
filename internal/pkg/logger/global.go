package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *AppLogger
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance. If no logger is set,
// a plain default is returned so callers never get nil.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return &AppLogger{Logger: logrus.StandardLogger()}
	}
	return globalLogger
}

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

// Info logs an info message using the global logger
func Info(msg string, fields Fields) {
	GetGlobalLogger().WithFields(fields).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields Fields) {
	GetGlobalLogger().WithFields(fields).Warn(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields Fields) {
	GetGlobalLogger().WithFields(fields).Error(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields Fields) {
	GetGlobalLogger().WithFields(fields).Debug(msg)
}
