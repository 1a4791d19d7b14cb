// Package logging provides the leveled logger used across fun-claw.
package logging

import (
	"fmt"
	"log"
	"os"
)

// Config for logger
type Config struct {
	Level string // debug, info, warn, error
}

// Logger is a basic leveled logger over the standard library
type Logger struct {
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	debugLog *log.Logger
	level    string
}

// New creates a new logger instance
func New(cfg Config) *Logger {
	if cfg.Level == "" {
		cfg.Level = "info"
	}

	return &Logger{
		infoLog:  log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime),
		warnLog:  log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime),
		errorLog: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime),
		debugLog: log.New(os.Stderr, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		level:    cfg.Level,
	}
}

// Info logs an info message
func (l *Logger) Info(message string, args ...interface{}) {
	if l.level == "debug" || l.level == "info" {
		l.infoLog.Printf(message, args...)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(message string, args ...interface{}) {
	if l.level != "error" {
		l.warnLog.Printf(message, args...)
	}
}

// Error logs an error message
func (l *Logger) Error(message string, args ...interface{}) {
	l.errorLog.Printf(message, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, args ...interface{}) {
	if l.level == "debug" {
		l.debugLog.Printf(message, args...)
	}
}

// LogError logs an error with context
func (l *Logger) LogError(err error, message string, args ...interface{}) {
	if err != nil {
		l.Error("%s: %v", fmt.Sprintf(message, args...), err)
	} else {
		l.Info(message, args...)
	}
}
