package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ardnew/multilog"
)

func TestWatch_AppliesLevelChanges(t *testing.T) {
	path := writeConfig(t, "multilog.yaml", "level: error\n")

	logger := multilog.New()
	logger.SetVerboseLevel(multilog.LevelError)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := Watch(ctx, path, logger); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for logger.VerboseLevel() != multilog.LevelDebug {
		if time.Now().After(deadline) {
			t.Fatalf(
				"threshold never followed the rewritten config, still %v",
				logger.VerboseLevel(),
			)
		}

		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatch_KeepsSettingsOnParseError(t *testing.T) {
	path := writeConfig(t, "multilog.yaml", "level: warning\n")

	logger := multilog.New()
	logger.SetVerboseLevel(multilog.LevelWarning)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := Watch(ctx, path, logger); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("level: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Give the watcher a moment to observe the rewrite.
	time.Sleep(100 * time.Millisecond)

	if got := logger.VerboseLevel(); got != multilog.LevelWarning {
		t.Errorf("expected last good threshold to survive, got %v", got)
	}
}

func TestWatch_MissingFile(t *testing.T) {
	logger := multilog.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := Watch(ctx, "/nonexistent/multilog.yaml", logger)
	if err == nil {
		t.Fatal("expected error watching a missing file")
	}
}
