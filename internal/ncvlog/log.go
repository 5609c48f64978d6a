// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package ncvlog is a small leveled-logging wrapper: a Logger interface,
// a Filter that drops messages below a level, and a Helper exposing
// Debugf/Infof/Warnf/Errorf, built directly on the standard log package.
package ncvlog

import (
	"fmt"
	"log"
	"os"
)

// Level orders log severities from most to least verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal sink every Helper writes through.
type Logger interface {
	Log(level Level, msg string) error
}

// stdLogger writes to an underlying *log.Logger with no filtering.
type stdLogger struct {
	std *log.Logger
}

// NewStdLogger builds a Logger that writes to w via the standard log
// package, one line per message, prefixed with the severity.
func NewStdLogger(w *os.File) Logger {
	return &stdLogger{std: log.New(w, "", log.LstdFlags)}
}

func (l *stdLogger) Log(level Level, msg string) error {
	l.std.Printf("[%s] %s", level, msg)
	return nil
}

// filter drops messages below a minimum level before delegating.
type filter struct {
	next Logger
	min  Level
}

// NewFilter wraps next so that only messages at or above min pass
// through.
func NewFilter(next Logger, min Level) Logger {
	return &filter{next: next, min: min}
}

// FilterLevel is a readability alias used at filter construction sites,
// e.g. log.NewFilter(logger, log.FilterLevel(log.LevelWarn)).
func FilterLevel(l Level) Level {
	return l
}

func (f *filter) Log(level Level, msg string) error {
	if level < f.min {
		return nil
	}
	return f.next.Log(level, msg)
}

// Helper adds printf-style convenience methods over a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger. A nil logger makes every method a no-op, so
// Options.Logger may be left unset.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Log(level, fmt.Sprintf(format, args...))
}

func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, format, args...) }
func (h *Helper) Infof(format string, args ...interface{})  { h.log(LevelInfo, format, args...) }
func (h *Helper) Warnf(format string, args ...interface{})  { h.log(LevelWarn, format, args...) }
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, format, args...) }

// Default returns a Helper writing to stderr at LevelWarn and above.
// Parse does not substitute it for an unset Options.Logger; a nil Logger
// disables logging.
func Default() *Helper {
	return NewHelper(NewFilter(NewStdLogger(os.Stderr), LevelWarn))
}
