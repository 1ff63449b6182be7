package multilog_test

import (
	"os"
	"path/filepath"

	"github.com/ardnew/multilog"
	"github.com/ardnew/multilog/target"
)

func Example_basic() {
	logger := multilog.New()
	logger.AddTarget(target.NewConsole())

	logger.Print("Example of an unknown log severity")
	logger.Failure("Imminent program failure")
	logger.Error("Error, but program can continue")
	logger.Warning("Warning")
	logger.Important("More relevant than regular info messages")
	logger.Info("Used for general messages")
	logger.Debug("Only relevant to the developer")
	logger.Verbose("Useful when developers need more information")
}

func Example_templates() {
	logger := multilog.New()
	logger.AddTarget(target.NewConsole(target.WithColors(false)))

	logger.Failure("{1} and {0}", 1.5, "test")
	logger.Debug("Hello {1}!", "World", "Dog")
	logger.Info("I would rather be {1} than {0}", "right", "happy")
	logger.Debug("Hello {}, you are a {}!", "World", "Dog")
}

func Example_handles() {
	logger := multilog.New()

	// Two ways to set the threshold: raw ordinal or named level.
	logger.SetVerboseLevel(multilog.Level(-2))
	logger.SetVerboseLevel(multilog.LevelVerbose)

	console1 := target.NewConsole()
	console2 := target.NewConsole()
	console1.SetPrefix("[Target 1]")
	console2.SetPrefix("[Target 2]")

	h1 := logger.AddTarget(console1)
	h2 := logger.AddTarget(console2)

	// Log through one target only, bypassing the logger.
	console1.Log(multilog.LevelFailure, "Only console target 1!")

	// Log through every registered target.
	logger.Failure("All targets")

	logger.RemoveTarget(h1)
	logger.RemoveTarget(h2)
}

func Example_file() {
	path := filepath.Join(os.TempDir(), "LogFile.log")

	logger := multilog.New()
	logger.AddTarget(target.NewConsole())

	file := target.NewFile(path, target.WithAppend(true))
	defer file.Close()

	logger.AddTarget(file)
	logger.SetPrefix("[ENGINE]")

	logger.Info("written to the console and the file")
	logger.Flush()
}
