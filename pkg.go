package multilog

// defaultLog serves the package-level logging functions. It starts with no
// targets: register one with [AddTarget] before logging through the package.
var defaultLog = New()

// Default returns the logger used by the package-level functions.
func Default() *Logger { return defaultLog }

// AddTarget registers t with the default logger.
func AddTarget(t Target) Handle { return defaultLog.AddTarget(t) }

// RemoveTarget detaches the registration identified by h from the default
// logger.
func RemoveTarget(h Handle) { defaultLog.RemoveTarget(h) }

// SetVerboseLevel replaces the default logger's verbosity threshold.
func SetVerboseLevel(level Level) { defaultLog.SetVerboseLevel(level) }

// SetPrefix sets the same prefix on every target registered with the
// default logger.
func SetPrefix(prefix string) { defaultLog.SetPrefix(prefix) }

// Flush flushes every target registered with the default logger.
func Flush() { defaultLog.Flush() }

// Log logs a message at the given level using the default logger.
func Log(level Level, template string, args ...any) {
	defaultLog.Log(level, template, args...)
}

// Print logs a message with no severity using the default logger.
// It passes the filter at any threshold.
func Print(template string, args ...any) { defaultLog.Print(template, args...) }

// Verbose logs a message at Verbose level using the default logger.
func Verbose(template string, args ...any) { defaultLog.Verbose(template, args...) }

// Debug logs a message at Debug level using the default logger.
func Debug(template string, args ...any) { defaultLog.Debug(template, args...) }

// Info logs a message at Info level using the default logger.
func Info(template string, args ...any) { defaultLog.Info(template, args...) }

// Important logs a message at Important level using the default logger.
func Important(template string, args ...any) { defaultLog.Important(template, args...) }

// Warning logs a message at Warning level using the default logger.
func Warning(template string, args ...any) { defaultLog.Warning(template, args...) }

// Error logs a message at Error level using the default logger.
func Error(template string, args ...any) { defaultLog.Error(template, args...) }

// Failure logs a message at Failure level using the default logger.
func Failure(template string, args ...any) { defaultLog.Failure(template, args...) }
