// Package logging provides the levelled logger whose verbosity is driven by the built-in
// --verbosity, -v and -q options. A Logger is an explicit configuration object owned by a
// parser: there is no process-wide verbosity.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/util"
)

// Level is a verbosity level. A message is written when its level is less than or equal to
// the logger's level.
type Level int

const (
	LevelSilent Level = iota
	LevelFatal
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

// DefaultLevel is used when no verbosity is requested
const DefaultLevel = LevelInfo

var levelNames = [...]string{"silent", "fatal", "error", "warn", "info", "debug"}

func (l Level) String() string {
	if l < LevelSilent || l > LevelDebug {
		return "unknown"
	}

	return levelNames[l]
}

// ParseLevel accepts a digit ("0".."5"), an initial ("s", "f", "e", "w", "i", "d") or a
// level name ("silent" ... "debug"), case-insensitively
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		n, _ := strconv.Atoi(s)
		if Level(n) <= LevelDebug {
			return Level(n), nil
		}
		return DefaultLevel, errs.ErrInvalidLevel.WithArgs(s)
	}
	for i, name := range levelNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Level(i), nil
		}
	}

	return DefaultLevel, errs.ErrInvalidLevel.WithArgs(s)
}

// Logger writes levelled messages to a single writer
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	base     Level
	level    Level
	useColor bool
	prefixes map[Level]*color.Color
}

// ConfigureLoggerFunc configures a Logger
type ConfigureLoggerFunc func(l *Logger)

// WithLevel sets the initial level, the one Reset returns to
func WithLevel(level Level) ConfigureLoggerFunc {
	return func(l *Logger) {
		l.base = level
		l.level = level
	}
}

// WithColor forces colored level prefixes on or off. By default prefixes are colored only
// when the output is a terminal.
func WithColor(enabled bool) ConfigureLoggerFunc {
	return func(l *Logger) {
		l.useColor = enabled
	}
}

// New creates a Logger writing to w. A nil w writes to os.Stderr.
func New(w io.Writer, configs ...ConfigureLoggerFunc) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := &Logger{
		out:      w,
		base:     DefaultLevel,
		level:    DefaultLevel,
		useColor: util.IsTerminal(w, nil),
		prefixes: map[Level]*color.Color{
			LevelFatal: color.New(color.FgMagenta, color.Bold),
			LevelError: color.New(color.FgRed),
			LevelWarn:  color.New(color.FgYellow),
			LevelInfo:  color.New(color.FgGreen),
			LevelDebug: color.New(color.FgCyan),
		},
	}
	for _, config := range configs {
		config(l)
	}
	for _, c := range l.prefixes {
		if l.useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return l
}

// Level returns the current level
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.level
}

// SetLevel changes the current level, clamped to [LevelSilent, LevelDebug]
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = clamp(level)
}

// Verboser raises the level by one, up to LevelDebug
func (l *Logger) Verboser() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = clamp(l.level + 1)
}

// Quieter lowers the level by one, down to LevelSilent
func (l *Logger) Quieter() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = clamp(l.level - 1)
}

// Reset restores the initial level
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = l.base
}

// Enabled returns true when messages of level are written
func (l *Logger) Enabled(level Level) bool {
	return level != LevelSilent && level <= l.Level()
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(LevelFatal, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(l.out, "%s %s", l.prefixes[level].Sprintf("[%s]", level), msg)
}

func clamp(level Level) Level {
	if level < LevelSilent {
		return LevelSilent
	}
	if level > LevelDebug {
		return LevelDebug
	}

	return level
}
