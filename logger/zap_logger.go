package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the [Logger] interface on top of a [zap.Logger].
// Key-value arguments are passed to a [zap.SugaredLogger]. Zap has no trace
// level: trace records are discarded unless enabled with [ZapLogger.WithTrace],
// and are then written at zap's debug level.
type ZapLogger struct {
	logger *zap.SugaredLogger
	trace  bool
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger returns a new [ZapLogger].
// It will panic if the logger is nil.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		panic("nil logger")
	}
	return &ZapLogger{
		logger: logger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

// WithTrace returns a copy of the logger writing trace records if enabled.
func (l *ZapLogger) WithTrace(enabled bool) *ZapLogger {
	return &ZapLogger{
		logger: l.logger,
		trace:  enabled,
	}
}

// Trace logs at zap's debug level if trace is enabled.
func (l *ZapLogger) Trace(msg string, args ...any) {
	if l.trace {
		l.logger.Debugw(msg, args...)
	}
}

// Debug logs at the debug level.
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.logger.Debugw(msg, args...)
}

// Info logs at the info level.
func (l *ZapLogger) Info(msg string, args ...any) {
	l.logger.Infow(msg, args...)
}

// Warn logs at the warn level.
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.logger.Warnw(msg, args...)
}

// Error logs at the error level.
func (l *ZapLogger) Error(msg string, args ...any) {
	l.logger.Errorw(msg, args...)
}

// Enabled reports whether the zap core accepts entries at the given level.
func (l *ZapLogger) Enabled(level Level) bool {
	if level >= LevelOff || (level < LevelDebug && !l.trace) {
		return false
	}
	return l.logger.Desugar().Core().Enabled(zapLevel(level))
}

func zapLevel(level Level) zapcore.Level {
	switch {
	case level >= LevelError:
		return zapcore.ErrorLevel
	case level >= LevelWarn:
		return zapcore.WarnLevel
	case level >= LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
