// Package logging is a small leveled front end for the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level represents logging severity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var currentLevel = LevelWarn

func init() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
}

// SetVerbosity maps a count of -v flags to a level.
func SetVerbosity(count int) {
	switch {
	case count <= 0:
		currentLevel = LevelWarn
	case count == 1:
		currentLevel = LevelInfo
	default:
		currentLevel = LevelDebug
	}
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// CurrentLevel returns the active level.
func CurrentLevel() Level {
	return currentLevel
}

// String converts a Level to its label.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel returns the Level named by s.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelWarn, fmt.Errorf("unknown level %s", s)
	}
}

// SetLevel sets the active level.
func SetLevel(l Level) {
	currentLevel = l
}

func logf(l Level, prefix, format string, args ...any) {
	if l > currentLevel {
		return
	}
	log.Printf("[%s] %s", strings.ToUpper(prefix), fmt.Sprintf(format, args...))
}

// Errorf always prints.
func Errorf(format string, args ...any) {
	logf(LevelError, "err", format, args...)
}

func Warnf(format string, args ...any) {
	logf(LevelWarn, "warn", format, args...)
}

func Infof(format string, args ...any) {
	logf(LevelInfo, "info", format, args...)
}

func Debugf(format string, args ...any) {
	logf(LevelDebug, "dbg", format, args...)
}
