package logger

import (
	"sync"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/handler/consolehandler"
)

var (
	defaultLogger *ConsoleLogger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a console output on stdout
	out := consolehandler.NewConsoleOutput(consolehandler.ConsoleConfig{})
	defaultLogger = New(out)
}

// Default returns the default logger
func Default() *ConsoleLogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *ConsoleLogger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs a message with context using the default logger
func Log(level core.Level, msg string, ctx core.Context) error {
	return Default().Log(level, msg, ctx)
}

// Emergency logs an emergency message using the default logger
func Emergency(msg string, fields ...core.Field) {
	Default().Emergency(msg, fields...)
}

// Alert logs an alert message using the default logger
func Alert(msg string, fields ...core.Field) {
	Default().Alert(msg, fields...)
}

// Critical logs a critical message using the default logger
func Critical(msg string, fields ...core.Field) {
	Default().Critical(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	Default().Error(msg, fields...)
}

// Warning logs a warning message using the default logger
func Warning(msg string, fields ...core.Field) {
	Default().Warning(msg, fields...)
}

// Notice logs a notice message using the default logger
func Notice(msg string, fields ...core.Field) {
	Default().Notice(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	Default().Info(msg, fields...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	Default().Debug(msg, fields...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) {
	Default().Warningf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *ConsoleLogger {
	return Default().With(fields...)
}
