/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package common contains common properties used by the subpackages, most notably the package-level
// logger `Log` that all packages write to.
package common

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the interface used for logging in the assettool packages.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// DummyLogger does nothing.
type DummyLogger struct{}

// Error does nothing for dummy logger.
func (DummyLogger) Error(format string, args ...interface{}) {}

// Warning does nothing for dummy logger.
func (DummyLogger) Warning(format string, args ...interface{}) {}

// Notice does nothing for dummy logger.
func (DummyLogger) Notice(format string, args ...interface{}) {}

// Info does nothing for dummy logger.
func (DummyLogger) Info(format string, args ...interface{}) {}

// Debug does nothing for dummy logger.
func (DummyLogger) Debug(format string, args ...interface{}) {}

// Trace does nothing for dummy logger.
func (DummyLogger) Trace(format string, args ...interface{}) {}

// IsLogLevel returns true from dummy logger.
func (DummyLogger) IsLogLevel(level LogLevel) bool {
	return true
}

// LogLevel is the verbosity level for logging.
type LogLevel int

// Defines log level enum where the most important logs have the lowest values.
// I.e. level error = 0 and level trace = 5
const (
	LogLevelTrace   LogLevel = 5
	LogLevelDebug   LogLevel = 4
	LogLevelInfo    LogLevel = 3
	LogLevelNotice  LogLevel = 2
	LogLevelWarning LogLevel = 1
	LogLevelError   LogLevel = 0
)

// ParseLogLevel returns the LogLevel named by `s` (case insensitive). "warn" is accepted for warning.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "notice":
		return LogLevelNotice, nil
	case "warning", "warn":
		return LogLevelWarning, nil
	case "error":
		return LogLevelError, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}

// String returns the name of `level`.
func (level LogLevel) String() string {
	switch level {
	case LogLevelTrace:
		return "trace"
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelNotice:
		return "notice"
	case LogLevelWarning:
		return "warning"
	case LogLevelError:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(level))
}

// zerologLevel maps `level` onto the closest zerolog level. zerolog has no notice level so notices
// are logged as info with a `notice` marker.
func (level LogLevel) zerologLevel() zerolog.Level {
	switch {
	case level >= LogLevelTrace:
		return zerolog.TraceLevel
	case level == LogLevelDebug:
		return zerolog.DebugLevel
	case level == LogLevelInfo, level == LogLevelNotice:
		return zerolog.InfoLevel
	case level == LogLevelWarning:
		return zerolog.WarnLevel
	}
	return zerolog.ErrorLevel
}

// ZerologLogger is a Logger writing through a zerolog.Logger.
type ZerologLogger struct {
	LogLevel LogLevel
	zl       zerolog.Logger
}

// NewConsoleLogger creates a new human readable logger writing to stderr.
func NewConsoleLogger(logLevel LogLevel) *ZerologLogger {
	return NewWriterLogger(logLevel, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})
}

// NewWriterLogger creates a new logger writing JSON lines to `w`. When `w` is a zerolog.ConsoleWriter
// the output is formatted for terminals instead.
func NewWriterLogger(logLevel LogLevel, w io.Writer) *ZerologLogger {
	zl := zerolog.New(w).With().Timestamp().Logger().Level(logLevel.zerologLevel())
	return &ZerologLogger{LogLevel: logLevel, zl: zl}
}

// NewFileLogger creates a logger writing JSON lines to a size-rotated file at `path`.
func NewFileLogger(logLevel LogLevel, path string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) *ZerologLogger {
	return NewWriterLogger(logLevel, NewRotatingFile(path, maxSizeMB, maxBackups, maxAgeDays, compress))
}

// NewRotatingFile returns a writer appending to `path`, rotated once it grows past `maxSizeMB`.
// Combine it with other writers through zerolog.MultiLevelWriter.
func NewRotatingFile(path string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   compress,
	}
}

// IsLogLevel returns true if log level is greater or equal than `level`.
// Can be used to avoid resource intensive calls to loggers.
func (l ZerologLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

// Error logs error message.
func (l ZerologLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		l.zl.Error().Msgf(format, args...)
	}
}

// Warning logs warning message.
func (l ZerologLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		l.zl.Warn().Msgf(format, args...)
	}
}

// Notice logs notice message.
func (l ZerologLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		l.zl.Info().Bool("notice", true).Msgf(format, args...)
	}
}

// Info logs info message.
func (l ZerologLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		l.zl.Info().Msgf(format, args...)
	}
}

// Debug logs debug message.
func (l ZerologLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		l.zl.Debug().Msgf(format, args...)
	}
}

// Trace logs trace message.
func (l ZerologLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		l.zl.Trace().Msgf(format, args...)
	}
}

// Log is the package-level logger. Silent until SetLogger is called.
var Log Logger = DummyLogger{}

// SetLogger sets 'logger' to be used by the assettool packages.
func SetLogger(logger Logger) {
	Log = logger
}
