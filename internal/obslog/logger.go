// Package obslog is a small dependency-free leveled logger used for the
// engine's own diagnostic output: the checker's report printer and the
// generator's bulk-run progress hook. It never logs to a global — callers
// thread a *Logger explicitly, or fall back to a package-level no-op.
package obslog

import (
	"io"
	"log"
	"os"
	"sync"
)

// Level is a logger's minimum severity.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
	Fatal
)

var levelNames = map[string]Level{
	"debug": Debug,
	"info":  Info,
	"warn":  Warn,
	"error": Error,
	"fatal": Fatal,
}

// ParseLevel maps a config string to a Level, defaulting to Info on an
// unrecognized name.
func ParseLevel(s string) Level {
	if l, ok := levelNames[s]; ok {
		return l
	}
	return Info
}

// Config configures a Logger: the minimum level it emits at, and the
// destination it writes to.
type Config struct {
	Level  string
	Output io.Writer
}

// Logger wraps a *log.Logger with a minimum level gate. The zero value is
// not usable; construct with New or use Default.
type Logger struct {
	logger *log.Logger
	mutex  sync.Mutex
	level  Level
}

// New builds a Logger from config. A nil Output defaults to os.Stderr.
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		logger: log.New(out, "", log.LstdFlags),
		level:  ParseLevel(config.Level),
	}
}

// Default is a package-level no-op logger: every level is suppressed. Code
// paths that are handed no *Logger use this rather than silently creating
// one bound to a global output stream.
var Default = &Logger{logger: log.New(io.Discard, "", 0), level: Fatal + 1}

func (l *Logger) log(level Level, tag, format string, args ...interface{}) {
	if l == nil || level < l.level {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.logger.Printf("["+tag+"] "+format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(Debug, "DEBUG", format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(Info, "INFO", format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(Warn, "WARN", format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(Error, "ERROR", format, args...) }

// Fatal logs at FATAL regardless of the configured level, then exits.
func (l *Logger) Fatal(format string, args ...interface{}) {
	if l == nil {
		os.Exit(1)
	}
	l.mutex.Lock()
	l.logger.Printf("[FATAL] "+format, args...)
	l.mutex.Unlock()
	os.Exit(1)
}
