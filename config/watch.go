package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/multilog"
)

// Watch applies level and prefix changes from the document at path to
// logger as the file is rewritten, until ctx is canceled.
//
// Target composition is fixed at build time; only the verbosity threshold
// and the broadcast prefix are reloaded. A rewrite that fails to parse
// leaves the last good settings in place.
func Watch(ctx context.Context, path string, logger *multilog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()

		return fmt.Errorf("watch config %q: %w", path, err)
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				cfg, err := Load(path)
				if err != nil {
					continue
				}

				logger.SetVerboseLevel(multilog.ParseLevel(cfg.Level))

				if cfg.Prefix != "" {
					logger.SetPrefix(cfg.Prefix)
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nil
}
