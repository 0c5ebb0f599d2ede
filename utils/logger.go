// Package utils provides the logging used across the client.
package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel represents the verbosity of the logger.
type LogLevel int

const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// ParseLogLevel converts a level name such as "debug" into a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none", "disabled":
		return LogLevelOff, nil
	case "error":
		return LogLevelError, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	default:
		return LogLevelOff, fmt.Errorf("unknown log level %q", s)
	}
}

// UnmarshalText lets LogLevel be read from the environment.
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l LogLevel) toZerolog() zerolog.Level {
	switch l {
	case LogLevelError:
		return zerolog.ErrorLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.Disabled
	}
}

// Logger is the logging surface used by the client. Keys and values
// alternate in keysAndValues.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	SetLevel(level LogLevel)
}

type logger struct {
	mu sync.RWMutex
	zl zerolog.Logger
}

// NewLogger returns a Logger writing human readable lines to stderr.
func NewLogger(level LogLevel) Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return NewLoggerWithWriter(output, level)
}

// NewLoggerWithWriter returns a Logger writing JSON lines to w.
func NewLoggerWithWriter(w io.Writer, level LogLevel) Logger {
	zl := zerolog.New(w).With().Timestamp().Logger().Level(level.toZerolog())
	return &logger{zl: zl}
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return &logger{zl: zerolog.Nop()}
}

func (l *logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl = l.zl.Level(level.toZerolog())
}

func (l *logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(zerolog.DebugLevel, msg, keysAndValues)
}

func (l *logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(zerolog.InfoLevel, msg, keysAndValues)
}

func (l *logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(zerolog.WarnLevel, msg, keysAndValues)
}

func (l *logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(zerolog.ErrorLevel, msg, keysAndValues)
}

func (l *logger) log(level zerolog.Level, msg string, keysAndValues []interface{}) {
	l.mu.RLock()
	zl := l.zl
	l.mu.RUnlock()

	event := zl.WithLevel(level)
	if event == nil {
		return
	}
	if len(keysAndValues)%2 != 0 {
		keysAndValues = append(keysAndValues, "(missing)")
	}
	event.Fields(keysAndValues).Msg(msg)
}
