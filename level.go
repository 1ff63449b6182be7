package multilog

import (
	"iter"
	"strconv"
	"strings"
)

// Level represents the severity of a log message. It doubles as the
// verbosity threshold of a [Logger]: lower values are more verbose, and a
// message passes the filter iff its level is at or above the threshold.
type Level int

const (
	LevelVerbose Level = iota - 2
	LevelDebug
	LevelInfo
	LevelImportant
	LevelWarning
	LevelError
	LevelFailure

	// LevelUnknown tags messages logged without a severity. It is never
	// filtered regardless of the configured threshold.
	LevelUnknown
)

// DefaultLevel is the default verbosity threshold. Nothing is filtered.
const DefaultLevel = LevelVerbose

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelImportant:
		return "important"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFailure:
		return "failure"
	case LevelUnknown:
		return "unknown"
	}

	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Levels returns an iterator over all defined level names, most verbose
// first.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelVerbose,
			LevelDebug,
			LevelInfo,
			LevelImportant,
			LevelWarning,
			LevelError,
			LevelFailure,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a level.
// Unrecognized input yields [DefaultLevel].
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return LevelVerbose
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "important":
		return LevelImportant
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	case "failure":
		return LevelFailure
	default:
		return DefaultLevel
	}
}

// passes reports whether a message tagged with l clears threshold.
// [LevelUnknown] always passes: messages logged without a severity are
// never filtered.
func (l Level) passes(threshold Level) bool {
	if l == LevelUnknown {
		return true
	}

	return l >= threshold
}
