// Package multilog fans severity-tagged text messages out to an ordered set
// of independent output targets.
//
// A [Logger] owns a registry of [Target] values. Each call to [Logger.Log]
// interpolates a curly-brace message template, applies the logger's
// verbosity threshold, and forwards the finished text to every registered
// target in registration order. Targets format independently: each decides
// whether to prepend a prefix, timestamp the line, colorize it, or tag it
// with the calling goroutine's id.
//
// # Basic Usage
//
//	logger := multilog.New()
//	logger.AddTarget(target.NewConsole())
//	logger.Info("listening on {0}", addr)
//
// # Targets
//
// Concrete targets live in [github.com/ardnew/multilog/target]. Registration
// returns an opaque [Handle] used exclusively to deregister that exact
// registration:
//
//	h := logger.AddTarget(target.NewFile("logs/app.log"))
//	defer logger.RemoveTarget(h)
//
// Registering the same target twice is allowed and produces two handles and
// two renders per accepted message. Removing an unknown handle is a no-op.
//
// # Filtering
//
// The verbosity threshold compares severity ordinals: a message passes iff
// its level is at or above the threshold. [LevelUnknown] tags messages
// logged without a severity (see [Logger.Print]) and is never filtered.
//
//	logger.SetVerboseLevel(multilog.LevelWarning)
//	logger.Info("dropped")
//	logger.Error("rendered")
//	logger.Print("rendered at any threshold")
//
// # Message Templates
//
// Templates use positional curly-brace placeholders, substituted by
// [github.com/ardnew/multilog/format]:
//
//	logger.Debug("Hello {}, you are a {}!", "World", "Dog")
//	logger.Debug("{1} and {0}", 1.5, "test")
//
// # Concurrency
//
// All Logger methods are safe for concurrent use. Targets serialize their
// own writes; no ordering is implied between goroutines logging
// concurrently.
package multilog
