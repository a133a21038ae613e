// Package log provides an interface to setup logging when using the graph algorithms in this module.
package log

import "fmt"

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// logger is the logger which is used internally by the library. Any calls the functions below use/affect this logger.
var logger Logger = nopLogger{}

// nopLogger is the no operations logger - ie, a nil logger that doesn't log anything.
type nopLogger struct{}

func (n nopLogger) Log(_ Level, _ string, _ ...any) {}

// SetLogger sets the logger which will be used by the library, a nil logger disables logging.
//
// NOTE: SetLogger is not safe to call concurrently with the logging functions below, it should be called once during
// application startup.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}

	logger = l
}

// Logf allows raw access to the underlying logger, most use cases should be through the functions below.
//
// NOTE: If no logger has been set using 'SetLogger' all logging information is omitted.
func Logf(level Level, format string, args ...any) {
	logger.Log(level, format, args...)
}

// Tracef logs the provided information at the trace level.
func Tracef(format string, args ...any) {
	Logf(LevelTrace, format, args...)
}

// Debugf logs the provided information at the debug level.
func Debugf(format string, args ...any) {
	Logf(LevelDebug, format, args...)
}

// Infof logs the provided information at the info level.
func Infof(format string, args ...any) {
	Logf(LevelInfo, format, args...)
}

// Warnf logs the provided information at the warn level.
func Warnf(format string, args ...any) {
	Logf(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func Errorf(format string, args ...any) {
	Logf(LevelError, format, args...)
}

// Panicf logs the provided information at the panic level.
func Panicf(format string, args ...any) {
	Logf(LevelPanic, format, args...)
	panic(fmt.Sprintf(format, args...))
}
