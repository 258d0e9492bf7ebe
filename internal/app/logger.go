package app

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger is the logging surface the application layer depends on.
// The CLI installs its leveled logger through SetLogger at startup.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// fallbackLogger is used until SetLogger is called. It drops DEBUG and INFO.
type fallbackLogger struct {
	output io.Writer
}

func (l *fallbackLogger) Debug(string, ...interface{}) {}

func (l *fallbackLogger) Info(string, ...interface{}) {}

func (l *fallbackLogger) Warn(format string, args ...interface{}) {
	fmt.Fprintf(l.output, "WARN: "+format+"\n", args...)
}

func (l *fallbackLogger) Error(format string, args ...interface{}) {
	fmt.Fprintf(l.output, "ERROR: "+format+"\n", args...)
}

var (
	loggerMu     sync.RWMutex
	globalLogger Logger = &fallbackLogger{output: os.Stderr}
)

// SetLogger replaces the application logger. nil is ignored.
func SetLogger(logger Logger) {
	if logger == nil {
		return
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	globalLogger = logger
}

// GetLogger returns the current application logger
func GetLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}
