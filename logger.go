package multilog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ardnew/multilog/format"
)

// Target is a rendering destination for log messages.
//
// Implementations must not propagate rendering failures to the caller;
// best-effort diagnostics on a side channel are the only failure signal.
// Concrete targets live in [github.com/ardnew/multilog/target].
type Target interface {
	// Log formats a single line for the given severity and writes it to the
	// target's medium.
	Log(level Level, message string)

	// Flush forces the medium to durably reflect all writes so far.
	Flush()

	// SetPrefix sets text prepended verbatim to each subsequently rendered
	// line.
	SetPrefix(prefix string)
}

// Handle identifies one target registration with a [Logger]. It is the only
// supported way to deregister that exact registration.
type Handle uuid.UUID

// Logger dispatches accepted log messages to every registered target in
// registration order.
//
// All methods are safe for concurrent use. The zero value is not usable;
// construct with [New].
type Logger struct {
	mu      sync.RWMutex
	targets map[Handle]Target
	order   []Handle
	level   Level
}

// New creates a Logger with no targets and the threshold set to
// [DefaultLevel], so nothing is filtered.
func New() *Logger {
	return &Logger{
		targets: make(map[Handle]Target),
		level:   DefaultLevel,
	}
}

// AddTarget registers t and returns the handle identifying this
// registration. The target is appended to the end of the dispatch sequence:
// output order is registration order.
//
// The same target may be registered more than once, producing independent
// handles and one render per registration for each accepted message.
func (l *Logger) AddTarget(t Target) Handle {
	h := Handle(uuid.New())

	l.mu.Lock()
	defer l.mu.Unlock()

	l.targets[h] = t
	l.order = append(l.order, h)

	return h
}

// RemoveTarget detaches the registration identified by h. The underlying
// target is not touched; surviving registrations keep their relative order.
// Removing a handle that is not registered (including a second removal of
// the same handle) is a no-op.
func (l *Logger) RemoveTarget(h Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.targets[h]; !ok {
		return
	}

	delete(l.targets, h)

	for i, o := range l.order {
		if o == h {
			l.order = append(l.order[:i], l.order[i+1:]...)

			break
		}
	}
}

// SetVerboseLevel replaces the verbosity threshold used by subsequent Log
// calls. Level is integer-backed, so raw ordinals convert directly:
// SetVerboseLevel(multilog.Level(-2)) and SetVerboseLevel(multilog.LevelVerbose)
// are equivalent.
func (l *Logger) SetVerboseLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
}

// VerboseLevel returns the current verbosity threshold.
func (l *Logger) VerboseLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.level
}

// SetPrefix sets the same prefix on every registered target, in
// registration order.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, h := range l.order {
		l.targets[h].SetPrefix(prefix)
	}
}

// Flush flushes every registered target in registration order.
func (l *Logger) Flush() {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, h := range l.order {
		l.targets[h].Flush()
	}
}

// Log interpolates template against args (see
// [github.com/ardnew/multilog/format]) and, if level clears the verbosity
// threshold, forwards the same finished text to every registered target in
// registration order.
func (l *Logger) Log(level Level, template string, args ...any) {
	message := format.Format(template, args...)

	l.mu.RLock()
	defer l.mu.RUnlock()

	if !level.passes(l.level) {
		return
	}

	for _, h := range l.order {
		l.targets[h].Log(level, message)
	}
}

// Print logs a message with no severity. Such messages are tagged
// [LevelUnknown] and pass the filter at any threshold.
func (l *Logger) Print(template string, args ...any) {
	l.Log(LevelUnknown, template, args...)
}

// Verbose logs a message at Verbose level.
func (l *Logger) Verbose(template string, args ...any) {
	l.Log(LevelVerbose, template, args...)
}

// Debug logs a message at Debug level.
func (l *Logger) Debug(template string, args ...any) {
	l.Log(LevelDebug, template, args...)
}

// Info logs a message at Info level.
func (l *Logger) Info(template string, args ...any) {
	l.Log(LevelInfo, template, args...)
}

// Important logs a message at Important level.
func (l *Logger) Important(template string, args ...any) {
	l.Log(LevelImportant, template, args...)
}

// Warning logs a message at Warning level.
func (l *Logger) Warning(template string, args ...any) {
	l.Log(LevelWarning, template, args...)
}

// Error logs a message at Error level.
func (l *Logger) Error(template string, args ...any) {
	l.Log(LevelError, template, args...)
}

// Failure logs a message at Failure level.
func (l *Logger) Failure(template string, args ...any) {
	l.Log(LevelFailure, template, args...)
}
