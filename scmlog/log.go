// Package scmlog provides an optional, leveled logging sink that callers
// pass explicitly to propagate/analyze (§9 "Global mutable state"). There is
// deliberately no package-level default logger — a host that wants output
// silenced simply passes nil or a Sink writing to io.Discard, instead of
// monkey-patching a global.
package scmlog

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level is logging verbosity, lowest to highest.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// Sink receives leveled log lines from the engine. Implementations must be
// safe for concurrent use — the propagation and sensitivity packages may log
// from multiple goroutines during parallel perturbation runs.
type Sink interface {
	Log(level Level, format string, args ...interface{})
}

// writerSink is the provided Sink implementation, backed by the standard
// library's *log.Logger (which already serializes concurrent writes).
type writerSink struct {
	level  Level
	logger *log.Logger
}

// NewWriterSink returns a Sink that writes lines at or below level to w,
// prefixed with the level name.
func NewWriterSink(w io.Writer, level Level) Sink {
	return &writerSink{level: level, logger: log.New(w, "", log.LstdFlags)}
}

// NewStderrSink is a convenience constructor for the common case.
func NewStderrSink(level Level) Sink {
	return NewWriterSink(os.Stderr, level)
}

func (s *writerSink) Log(level Level, format string, args ...interface{}) {
	if level > s.level {
		return
	}
	s.logger.Printf("[%s] %s", levelName(level), fmt.Sprintf(format, args...))
}

func levelName(l Level) string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// Emit is a nil-safe helper so callers throughout the engine don't need to
// guard every call site with `if sink != nil`.
func Emit(sink Sink, level Level, format string, args ...interface{}) {
	if sink == nil {
		return
	}
	sink.Log(level, format, args...)
}
