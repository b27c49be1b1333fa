package logger

import (
	"log"
	"os"
	"sync"
)

type loggerValue struct {
	sync.RWMutex
	logger Logger
}

func (l *loggerValue) getLogger() Logger {
	l.RLock()
	defer l.RUnlock()
	return l.logger
}

func (l *loggerValue) setLogger(new Logger) {
	l.Lock()
	defer l.Unlock()
	l.logger = new
}

var defaultLogger = loggerValue{
	logger: NewSimpleLogger(
		log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile),
		LevelInfo,
	),
}

// Default returns the default Logger.
func Default() Logger {
	return defaultLogger.getLogger()
}

// SetDefault makes l the default Logger. A nil l discards all records.
func SetDefault(l Logger) {
	if l == nil {
		l = NoOpLogger{}
	}
	defaultLogger.setLogger(l)
}

// Trace logs at LevelTrace using the default Logger.
func Trace(msg string, args ...any) {
	Default().Trace(msg, args...)
}

// Debug logs at LevelDebug using the default Logger.
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info logs at LevelInfo using the default Logger.
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

// Warn logs at LevelWarn using the default Logger.
func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

// Error logs at LevelError using the default Logger.
func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

// Enabled reports whether the default Logger handles records at the given level.
func Enabled(level Level) bool {
	return Default().Enabled(level)
}
