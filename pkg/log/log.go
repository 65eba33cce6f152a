package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

const (
	// DefaultLoggerFlag is the flag set used by the default logger.
	DefaultLoggerFlag = log.Ldate | log.Ltime | log.Lmicroseconds
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New(os.Stdout, "", DefaultLoggerFlag, LogLevelInfo)
}

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

func (level LogLevel) String() string {
	switch level {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	case LogLevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a log level string into a LogLevel.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLogLevel(level string) (LogLevel, error) {
	switch level {
	case "error":
		return LogLevelError, nil
	case "warn":
		return LogLevelWarn, nil
	case "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	case "trace":
		return LogLevelTrace, nil
	default:
		return LogLevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

// SetDefaultLogger replaces the logger used by the package level functions.
func SetDefaultLogger(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel changes the level of the default logger.
func SetLevel(level LogLevel) {
	getDefault().SetLevel(level)
}

func getDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Logger writes one JSON object per entry.
// It is safe for concurrent use: the network goroutine and the frame loop share it.
type Logger struct {
	logger *log.Logger
	mu     sync.RWMutex
	level  LogLevel
	fields map[string]string
}

func New(out io.Writer, prefix string, flag int, level LogLevel) *Logger {
	return &Logger{
		logger: log.New(out, prefix, flag),
		level:  level,
	}
}

// With returns a logger that adds the given key/value to every entry.
func (l *Logger) With(key, value string) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fields := make(map[string]string, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &Logger{
		logger: l.logger,
		level:  l.level,
		fields: fields,
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level > l.Level() {
		return
	}
	logEntry := map[string]interface{}{
		"level": level.String(),
		"msg":   fmt.Sprintf(format, args...),
	}
	for k, v := range l.fields {
		logEntry[k] = v
	}
	msgBytes, _ := json.Marshal(logEntry)
	l.logger.Print(string(msgBytes))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LogLevelTrace, format, args...)
}

// With returns a logger derived from the default logger that adds key/value to every entry.
func With(key, value string) *Logger {
	return getDefault().With(key, value)
}

func Info(format string, args ...interface{}) {
	getDefault().Info(format, args...)
}

func Error(format string, args ...interface{}) {
	getDefault().Error(format, args...)
}

func Warn(format string, args ...interface{}) {
	getDefault().Warn(format, args...)
}

func Debug(format string, args ...interface{}) {
	getDefault().Debug(format, args...)
}

func Trace(format string, args ...interface{}) {
	getDefault().Trace(format, args...)
}
